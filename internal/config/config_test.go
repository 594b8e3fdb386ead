package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afletter-dev/afletter/internal/importer"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("owner-1")
	cfg.Import.ExtraSynonyms = importer.Synonyms{Date: []string{"valutadatum"}}

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Owner, got.Owner)
	assert.Equal(t, cfg.Database.Path, got.Database.Path)
	assert.Equal(t, cfg.Import.Currency, got.Import.Currency)
	assert.Equal(t, cfg.Matching.WindowDays, got.Matching.WindowDays)
	assert.Equal(t, []string{"valutadatum"}, got.Import.ExtraSynonyms.Date)
}

func TestDefaults(t *testing.T) {
	cfg := Default("owner-1")

	assert.Equal(t, "owner-1", cfg.Owner)
	assert.Equal(t, "ledger.db", cfg.Database.Path)
	assert.Equal(t, "EUR", cfg.Import.Currency)
	assert.Equal(t, 30, cfg.Matching.WindowDays)
}

func TestSynonyms_MergesExtras(t *testing.T) {
	cfg := Default("owner-1")
	cfg.Import.ExtraSynonyms = importer.Synonyms{Amount: []string{"transactiebedrag"}}

	syn := cfg.Synonyms()
	assert.Contains(t, syn.Amount, "bedrag")
	assert.Contains(t, syn.Amount, "transactiebedrag")
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("owner-1")
	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "owner: owner-1")
	assert.Contains(t, contents, "path: ledger.db")
	assert.Contains(t, contents, "currency: EUR")
	assert.Contains(t, contents, "window_days: 30")
}
