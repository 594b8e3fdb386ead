package importer

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/afletter-dev/afletter/internal/amount"
	"github.com/afletter-dev/afletter/internal/model"
)

const isoDate = "2006-01-02"

// dayFirstFormats are the non-ISO date layouts seen in Dutch bank exports.
var dayFirstFormats = []string{"02-01-2006", "02/01/2006"}

// NormalizeRow converts one data row into a canonical transaction. ok is
// false when the row has no usable date and must be skipped. failures counts
// amount cells that silently fell back to zero.
func NormalizeRow(row []string, cols Columns, owner, currency, source string) (tx model.BankTransaction, ok bool, failures int) {
	rawDate := strings.TrimSpace(cell(row, cols.Date))
	if rawDate == "" {
		return model.BankTransaction{}, false, 0
	}
	date, err := parseDate(rawDate)
	if err != nil {
		return model.BankTransaction{}, false, 0
	}

	var amt decimal.Decimal
	if cols.Amount >= 0 && cell(row, cols.Amount) != "" {
		var parsed bool
		amt, parsed = amount.Parse(cell(row, cols.Amount))
		if !parsed {
			failures++
		}
	} else {
		// bij - af
		credit, creditOK := amount.Parse(cell(row, cols.Credit))
		debit, debitOK := amount.Parse(cell(row, cols.Debit))
		if !creditOK {
			failures++
		}
		if !debitOK {
			failures++
		}
		amt = credit.Sub(debit)
	}

	desc := cell(row, cols.Description)
	cp := cell(row, cols.Counterparty)
	iban := cell(row, cols.IBAN)
	ref := cell(row, cols.Reference)

	tx = model.BankTransaction{
		Owner:        owner,
		Date:         date,
		Amount:       amt,
		Currency:     currency,
		Description:  desc,
		Counterparty: cp,
		IBAN:         iban,
		Reference:    ref,
		Source:       source,
		ContentHash:  ContentHash(date, amt, desc, cp, iban, ref),
	}
	return tx, true, failures
}

// ContentHash fingerprints the semantic fields of a transaction. The input
// composition matches what existing ledgers were deduplicated with, so
// re-imports of old statements still collide with their earlier rows.
func ContentHash(date time.Time, amt decimal.Decimal, description, counterparty, iban, reference string) string {
	key := strings.ToLower(strings.Join([]string{
		date.Format(isoDate),
		amt.StringFixed(2),
		description,
		counterparty,
		iban,
		reference,
	}, "|"))

	h := fnv.New64a()
	h.Write([]byte(key))
	return fmt.Sprintf("%016x", h.Sum64())
}

func parseDate(raw string) (time.Time, error) {
	if d, err := time.Parse(isoDate, raw); err == nil {
		return d, nil
	}
	for _, layout := range dayFirstFormats {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
