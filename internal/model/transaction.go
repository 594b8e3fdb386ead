package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is one imported bank statement line.
type BankTransaction struct {
	ID           string
	Owner        string
	Date         time.Time       // calendar date, no time component
	Amount       decimal.Decimal // positive = money in, negative = money out
	Currency     string
	Description  string
	Counterparty string
	IBAN         string
	Reference    string
	Source       string // provenance tag, e.g. "csv:statement.csv"
	ContentHash  string // dedupe key, unique per owner

	Matched           bool
	MatchedInvoiceID  string
	MatchedPurchaseID string
}

// TargetKind identifies what a transaction is reconciled against.
type TargetKind string

const (
	TargetInvoice  TargetKind = "invoice"
	TargetPurchase TargetKind = "purchase"
)

// Suggestion is a proposed match for one unmatched transaction.
type Suggestion struct {
	Kind     TargetKind
	TargetID string
	Label    string // display number, or a short ID when the target has none
}
