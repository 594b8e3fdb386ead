package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/afletter-dev/afletter/internal/model"
)

// transactionRow is the bank_transactions table. (owner, content_hash) is the
// natural dedupe key; re-imports of the same statement must collide here.
type transactionRow struct {
	ID                string          `gorm:"primaryKey;size:36"`
	Owner             string          `gorm:"size:64;uniqueIndex:idx_tx_owner_hash"`
	TxDate            time.Time       `gorm:"index"`
	Amount            decimal.Decimal `gorm:"type:text"`
	Currency          string          `gorm:"size:3"`
	Description       string
	Counterparty      string
	IBAN              string `gorm:"column:iban"`
	Reference         string
	Source            string
	ContentHash       string `gorm:"size:16;uniqueIndex:idx_tx_owner_hash"`
	Matched           bool
	MatchedInvoiceID  string `gorm:"size:36"`
	MatchedPurchaseID string `gorm:"size:36"`
	CreatedAt         time.Time
}

func (transactionRow) TableName() string { return "bank_transactions" }

func (r transactionRow) toModel() model.BankTransaction {
	return model.BankTransaction{
		ID:                r.ID,
		Owner:             r.Owner,
		Date:              r.TxDate,
		Amount:            r.Amount,
		Currency:          r.Currency,
		Description:       r.Description,
		Counterparty:      r.Counterparty,
		IBAN:              r.IBAN,
		Reference:         r.Reference,
		Source:            r.Source,
		ContentHash:       r.ContentHash,
		Matched:           r.Matched,
		MatchedInvoiceID:  r.MatchedInvoiceID,
		MatchedPurchaseID: r.MatchedPurchaseID,
	}
}

// invoiceRow is the sales invoice projection used for matching.
type invoiceRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	Owner     string `gorm:"size:64;index"`
	NumberStr string
	Total     decimal.Decimal `gorm:"type:text"`
	IssueDate time.Time
	Status    string `gorm:"size:16"`
}

func (invoiceRow) TableName() string { return "invoices" }

func (r invoiceRow) toModel() model.InvoiceLite {
	return model.InvoiceLite{
		ID:     r.ID,
		Number: r.NumberStr,
		Total:  r.Total,
		Date:   r.IssueDate,
		Status: model.InvoiceStatus(r.Status),
	}
}

// purchaseRow is the purchase invoice projection used for matching.
type purchaseRow struct {
	ID          string `gorm:"primaryKey;size:36"`
	Owner       string `gorm:"size:64;index"`
	NumberStr   string
	Total       decimal.Decimal `gorm:"type:text"`
	InvoiceDate time.Time
	Status      string `gorm:"size:16"`
}

func (purchaseRow) TableName() string { return "purchase_invoices" }

func (r purchaseRow) toModel() model.PurchaseLite {
	return model.PurchaseLite{
		ID:     r.ID,
		Number: r.NumberStr,
		Total:  r.Total,
		Date:   r.InvoiceDate,
		Status: model.PurchaseStatus(r.Status),
	}
}
