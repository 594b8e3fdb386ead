package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/afletter-dev/afletter/internal/importer"
)

// FileName is the config file written by `afletter init`.
const FileName = "afletter.yaml"

// Config represents the top-level afletter.yaml configuration.
type Config struct {
	Owner    string         `yaml:"owner"`
	Database DatabaseConfig `yaml:"database"`
	Import   ImportConfig   `yaml:"import"`
	Matching MatchingConfig `yaml:"matching"`
}

// DatabaseConfig locates the ledger database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ImportConfig controls CSV import behavior.
type ImportConfig struct {
	Currency string `yaml:"currency"`
	// ExtraSynonyms extends the built-in header terms for bank exports the
	// defaults don't recognize.
	ExtraSynonyms importer.Synonyms `yaml:"extra_synonyms,omitempty"`
}

// MatchingConfig controls the suggestion engine.
type MatchingConfig struct {
	WindowDays int `yaml:"window_days"`
}

// Synonyms returns the effective header synonym table.
func (c *Config) Synonyms() importer.Synonyms {
	return importer.DefaultSynonyms().Extend(c.Import.ExtraSynonyms)
}

// Load reads an afletter.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default(owner string) *Config {
	return &Config{
		Owner:    owner,
		Database: DatabaseConfig{Path: "ledger.db"},
		Import:   ImportConfig{Currency: "EUR"},
		Matching: MatchingConfig{WindowDays: 30},
	}
}
