package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/afletter-dev/afletter/internal/auditlog"
	"github.com/afletter-dev/afletter/internal/importer"
	"github.com/afletter-dev/afletter/internal/logging"
)

func newImportCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a bank CSV export into the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, configPath, args[0])
		},
	}

	addConfigFlag(cmd, &configPath)

	return cmd
}

func runImport(cmd *cobra.Command, configPath, filePath string) error {
	log := logging.New()

	cfg, store, err := openLedger(configPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filePath, err)
	}

	fileName := filepath.Base(filePath)
	pipeline := importer.NewPipeline(store, cfg.Synonyms(), cfg.Import.Currency)
	result, err := pipeline.ImportCSV(cmd.Context(), string(data), fileName, cfg.Owner)
	if err != nil {
		return err
	}

	if result.ParseFailures > 0 {
		log.Warn().
			Str("file", fileName).
			Int("parse_failures", result.ParseFailures).
			Msg("some amount cells could not be parsed and were booked as zero")
	}
	log.Info().
		Str("file", fileName).
		Int("inserted", result.Inserted).
		Int("ignored", result.Ignored).
		Int("skipped_rows", result.SkippedRows).
		Msg("import complete")

	entry := auditlog.Entry{
		Timestamp:     time.Now(),
		File:          fileName,
		Owner:         cfg.Owner,
		Inserted:      result.Inserted,
		Ignored:       result.Ignored,
		SkippedRows:   result.SkippedRows,
		ParseFailures: result.ParseFailures,
	}
	if err := auditlog.Append(filepath.Dir(configPath), []auditlog.Entry{entry}); err != nil {
		return fmt.Errorf("writing import log: %w", err)
	}

	fmt.Printf("Imported %s: %d new, %d duplicate, %d skipped\n",
		fileName, result.Inserted, result.Ignored, result.SkippedRows)
	return nil
}
