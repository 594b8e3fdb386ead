package importer

import (
	"fmt"
	"strings"
)

// SchemaError means the header row of an export was not recognized. Not
// retryable without fixing the export or extending the synonym table.
type SchemaError struct {
	Header []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("header row not recognized (got %q): need a date column plus an amount column or a credit and debit pair", strings.Join(e.Header, ", "))
}

// Synonyms maps each semantic column to the header terms that select it.
// Terms are matched against trimmed, lower-cased header cells.
type Synonyms struct {
	Date         []string `yaml:"date,omitempty"`
	Description  []string `yaml:"description,omitempty"`
	Amount       []string `yaml:"amount,omitempty"`
	Credit       []string `yaml:"credit,omitempty"`
	Debit        []string `yaml:"debit,omitempty"`
	IBAN         []string `yaml:"iban,omitempty"`
	Reference    []string `yaml:"reference,omitempty"`
	Counterparty []string `yaml:"counterparty,omitempty"`
}

// DefaultSynonyms returns the built-in Dutch + English bank export terms.
func DefaultSynonyms() Synonyms {
	return Synonyms{
		Date:         []string{"date", "datum", "boekdatum", "transactiedatum"},
		Description:  []string{"description", "omschrijving", "naam tegenpartij", "mededelingen", "omschrijving/mededelingen"},
		Amount:       []string{"amount", "bedrag", "mutatie", "saldo mutatie"},
		Credit:       []string{"credit", "bij", "bijschrijving"},
		Debit:        []string{"debit", "af", "afschrijving"},
		IBAN:         []string{"iban", "rekening", "rekeningnummer"},
		Reference:    []string{"reference", "kenmerk", "betalingskenmerk", "omschrijving 1"},
		Counterparty: []string{"counterparty", "tegenrekening", "naam tegenpartij"},
	}
}

// Extend returns a copy of s with extra terms appended per column.
func (s Synonyms) Extend(extra Synonyms) Synonyms {
	s.Date = append(append([]string{}, s.Date...), extra.Date...)
	s.Description = append(append([]string{}, s.Description...), extra.Description...)
	s.Amount = append(append([]string{}, s.Amount...), extra.Amount...)
	s.Credit = append(append([]string{}, s.Credit...), extra.Credit...)
	s.Debit = append(append([]string{}, s.Debit...), extra.Debit...)
	s.IBAN = append(append([]string{}, s.IBAN...), extra.IBAN...)
	s.Reference = append(append([]string{}, s.Reference...), extra.Reference...)
	s.Counterparty = append(append([]string{}, s.Counterparty...), extra.Counterparty...)
	return s
}

// Columns holds the resolved index of each semantic column, -1 when absent.
type Columns struct {
	Date         int
	Description  int
	Amount       int
	Credit       int
	Debit        int
	IBAN         int
	Reference    int
	Counterparty int
}

// MapColumns resolves the header row against the synonym table. The mapping
// is valid only when a date column is present together with either an amount
// column or both credit and debit columns.
func MapColumns(header []string, syn Synonyms) (Columns, error) {
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = strings.ToLower(strings.TrimSpace(h))
	}

	find := func(terms []string) int {
		for i, cell := range cells {
			for _, t := range terms {
				if cell == t {
					return i
				}
			}
		}
		return -1
	}

	cols := Columns{
		Date:         find(syn.Date),
		Description:  find(syn.Description),
		Amount:       find(syn.Amount),
		Credit:       find(syn.Credit),
		Debit:        find(syn.Debit),
		IBAN:         find(syn.IBAN),
		Reference:    find(syn.Reference),
		Counterparty: find(syn.Counterparty),
	}

	if cols.Date < 0 || (cols.Amount < 0 && (cols.Credit < 0 || cols.Debit < 0)) {
		return Columns{}, &SchemaError{Header: header}
	}
	return cols, nil
}
