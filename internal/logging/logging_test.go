package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Info().Str("file", "ing.csv").Int("inserted", 3).Msg("import complete")

	out := buf.String()
	assert.Contains(t, out, `"file":"ing.csv"`)
	assert.Contains(t, out, `"inserted":3`)
	assert.Contains(t, out, "import complete")
}
