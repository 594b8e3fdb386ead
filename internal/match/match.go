// Package match proposes at most one invoice or purchase for an unmatched
// bank transaction, using amount equality inside a date window. The first
// in-window candidate wins, in the order the candidates were given; existing
// reconciliations depend on that tie-break, so it is deliberately not
// nearest-date.
package match

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/afletter-dev/afletter/internal/model"
)

// DefaultWindowDays is the date tolerance around the transaction date.
const DefaultWindowDays = 30

// epsilon absorbs half-cent rounding differences between bank exports and
// invoice totals.
var epsilon = decimal.New(5, -3) // 0.005

// Suggester proposes matches against a fixed window.
type Suggester struct {
	windowDays int
}

// NewSuggester creates a Suggester. windowDays <= 0 selects the default.
func NewSuggester(windowDays int) *Suggester {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Suggester{windowDays: windowDays}
}

// Suggest returns the first open invoice (money in) or purchase (money out)
// whose total equals the transaction amount within the window, or nil. A zero
// amount never matches.
func (s *Suggester) Suggest(tx model.BankTransaction, invoices []model.InvoiceLite, purchases []model.PurchaseLite) *model.Suggestion {
	switch {
	case tx.Amount.IsPositive():
		for _, inv := range invoices {
			if amountsEqual(inv.Total, tx.Amount) && s.inWindow(inv.Date, tx.Date) {
				return &model.Suggestion{Kind: model.TargetInvoice, TargetID: inv.ID, Label: inv.Label()}
			}
		}
	case tx.Amount.IsNegative():
		paid := tx.Amount.Abs()
		for _, pur := range purchases {
			if amountsEqual(pur.Total, paid) && s.inWindow(pur.Date, tx.Date) {
				return &model.Suggestion{Kind: model.TargetPurchase, TargetID: pur.ID, Label: pur.Label()}
			}
		}
	}
	return nil
}

func (s *Suggester) inWindow(a, b time.Time) bool {
	days := a.Sub(b) / (24 * time.Hour)
	if days < 0 {
		days = -days
	}
	return int(days) <= s.windowDays
}

func amountsEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(epsilon)
}
