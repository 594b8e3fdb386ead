package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/afletter-dev/afletter/internal/config"
	"github.com/afletter-dev/afletter/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new afletter ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, owner)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner/tenant identifier (required)")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func runInit(dir, owner string) error {
	for _, d := range []string{".", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	cfg := config.Default(owner)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Create the database up front so a misconfigured path fails here, not
	// on first import.
	if _, err := ledger.Open(filepath.Join(dir, cfg.Database.Path)); err != nil {
		return err
	}

	fmt.Printf("Initialized afletter ledger at %s for owner %s\n", dir, owner)
	return nil
}
