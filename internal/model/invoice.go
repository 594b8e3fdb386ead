package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of a sales invoice.
type InvoiceStatus string

const (
	InvoiceDraft    InvoiceStatus = "draft"
	InvoiceSent     InvoiceStatus = "sent"
	InvoicePaid     InvoiceStatus = "paid"
	InvoiceCanceled InvoiceStatus = "canceled"
)

// Open reports whether the invoice is still eligible as a match target.
func (s InvoiceStatus) Open() bool {
	return s == InvoiceDraft || s == InvoiceSent
}

// PurchaseStatus is the lifecycle state of a purchase invoice.
type PurchaseStatus string

const (
	PurchaseDraft    PurchaseStatus = "draft"
	PurchaseBooked   PurchaseStatus = "booked"
	PurchasePaid     PurchaseStatus = "paid"
	PurchaseCanceled PurchaseStatus = "canceled"
)

// Open reports whether the purchase is still eligible as a match target.
func (s PurchaseStatus) Open() bool {
	return s == PurchaseDraft || s == PurchaseBooked
}

// InvoiceLite is the read-only invoice projection used for matching.
type InvoiceLite struct {
	ID     string
	Number string
	Total  decimal.Decimal // positive
	Date   time.Time       // issue date
	Status InvoiceStatus
}

// Label returns the display number, falling back to a shortened ID.
func (i InvoiceLite) Label() string {
	if i.Number != "" {
		return i.Number
	}
	return shortID(i.ID)
}

// PurchaseLite is the read-only purchase projection used for matching.
type PurchaseLite struct {
	ID     string
	Number string
	Total  decimal.Decimal // positive
	Date   time.Time       // supplier invoice date
	Status PurchaseStatus
}

// Label returns the display number, falling back to a shortened ID.
func (p PurchaseLite) Label() string {
	if p.Number != "" {
		return p.Number
	}
	return shortID(p.ID)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
