package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(file string, inserted int) Entry {
	return Entry{
		Timestamp:     time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
		File:          file,
		Owner:         "owner-1",
		Inserted:      inserted,
		Ignored:       2,
		SkippedRows:   1,
		ParseFailures: 0,
	}
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{entry("ing.csv", 12)}))
	require.NoError(t, Append(dir, []Entry{entry("rabo.csv", 7)}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "ing.csv", entries[0].File)
	assert.Equal(t, 12, entries[0].Inserted)
	assert.Equal(t, 2, entries[0].Ignored)
	assert.Equal(t, 1, entries[0].SkippedRows)
	assert.Equal(t, "owner-1", entries[0].Owner)
	assert.True(t, entries[0].Timestamp.Equal(entry("", 0).Timestamp))
	assert.Equal(t, "rabo.csv", entries[1].File)
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{entry("a.csv", 1)}))
	require.NoError(t, Append(dir, []Entry{entry("b.csv", 2)}))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "import-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "timestamp,file"))
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_BadCount(t *testing.T) {
	rec := MarshalEntry(entry("x.csv", 1))
	rec[colInserted] = "twelve"
	_, err := UnmarshalEntry(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing count")
}
