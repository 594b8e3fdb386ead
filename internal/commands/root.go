// Package commands wires the afletter CLI.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/afletter-dev/afletter/internal/buildinfo"
	"github.com/afletter-dev/afletter/internal/config"
	"github.com/afletter-dev/afletter/internal/ledger"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "afletter",
		Short:   "Bank import and reconciliation for a small-business ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newSuggestCommand())
	rootCmd.AddCommand(newReconcileCommand())
	rootCmd.AddCommand(newMatchedCommand())

	return rootCmd
}

// defaultConfigPath honors AFLETTER_CONFIG (settable via .env) before falling
// back to ./afletter.yaml.
func defaultConfigPath() string {
	if p := os.Getenv("AFLETTER_CONFIG"); p != "" {
		return p
	}
	return config.FileName
}

func addConfigFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVar(path, "config", defaultConfigPath(), "path to afletter.yaml")
}

// openLedger loads the config and opens the ledger database it points at.
// Relative database paths resolve against the config file's directory.
func openLedger(configPath string) (*config.Config, *ledger.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	dbPath := cfg.Database.Path
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(filepath.Dir(configPath), dbPath)
	}

	store, err := ledger.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}
