// Package importer turns raw bank CSV exports into deduplicated ledger
// transactions. Column layout is auto-detected from the header row, so one
// pipeline handles exports from different banks.
package importer

import (
	"context"
	"fmt"

	"github.com/afletter-dev/afletter/internal/csvscan"
	"github.com/afletter-dev/afletter/internal/model"
)

// ImportError means the file was structurally unusable: empty, or valid
// header but no importable data rows.
type ImportError struct {
	Msg string
}

func (e *ImportError) Error() string { return e.Msg }

// TransactionUpserter is the ledger store surface the pipeline writes to.
// Inserts are keyed on (owner, content hash); colliding rows are ignored, not
// overwritten.
type TransactionUpserter interface {
	UpsertTransactions(ctx context.Context, txs []model.BankTransaction) (inserted, ignored int, err error)
}

// ImportResult reports what one import did.
type ImportResult struct {
	Inserted      int // new transactions
	Ignored       int // duplicates of already-imported rows
	SkippedRows   int // data rows without a usable date
	ParseFailures int // amount cells that fell back to zero
}

// Pipeline orchestrates scan, column mapping, normalization and upsert.
type Pipeline struct {
	store    TransactionUpserter
	synonyms Synonyms
	currency string
}

// NewPipeline creates a Pipeline writing to store.
func NewPipeline(store TransactionUpserter, synonyms Synonyms, currency string) *Pipeline {
	return &Pipeline{store: store, synonyms: synonyms, currency: currency}
}

// ImportCSV imports one export file for owner. fileName is only used for the
// provenance tag. Row-level problems never abort the batch; structural ones
// do.
func (p *Pipeline) ImportCSV(ctx context.Context, text, fileName, owner string) (ImportResult, error) {
	rows := csvscan.Parse(text)
	if len(rows) == 0 {
		return ImportResult{}, &ImportError{Msg: "empty CSV file"}
	}

	cols, err := MapColumns(rows[0], p.synonyms)
	if err != nil {
		return ImportResult{}, err
	}

	source := "csv:" + fileName
	var result ImportResult
	var batch []model.BankTransaction
	for _, row := range rows[1:] {
		tx, ok, failures := NormalizeRow(row, cols, owner, p.currency, source)
		result.ParseFailures += failures
		if !ok {
			result.SkippedRows++
			continue
		}
		batch = append(batch, tx)
	}

	if len(batch) == 0 {
		return ImportResult{}, &ImportError{Msg: "no rows to import"}
	}

	inserted, ignored, err := p.store.UpsertTransactions(ctx, batch)
	if err != nil {
		return ImportResult{}, fmt.Errorf("storing transactions: %w", err)
	}
	result.Inserted = inserted
	result.Ignored = ignored
	return result, nil
}
