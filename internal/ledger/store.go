// Package ledger is the embedded relational store behind import, matching and
// reconciliation. It owns the (owner, content_hash) unique constraint that
// makes imports idempotent and performs the reconcile state flips in a single
// database transaction.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/afletter-dev/afletter/internal/model"
	"github.com/afletter-dev/afletter/internal/reconcile"
)

// Store wraps the sqlite ledger database.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the ledger database at path and migrates the
// schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}
	if err := db.AutoMigrate(&transactionRow{}, &invoiceRow{}, &purchaseRow{}); err != nil {
		return nil, fmt.Errorf("migrating ledger schema: %w", err)
	}
	return &Store{db: db}, nil
}

// UpsertTransactions bulk-inserts transactions, silently ignoring rows whose
// (owner, content hash) already exists. Existing rows are never overwritten.
func (s *Store) UpsertTransactions(ctx context.Context, txs []model.BankTransaction) (inserted, ignored int, err error) {
	if len(txs) == 0 {
		return 0, 0, nil
	}

	rows := make([]transactionRow, len(txs))
	for i, tx := range txs {
		rows[i] = transactionRow{
			ID:           uuid.NewString(),
			Owner:        tx.Owner,
			TxDate:       tx.Date,
			Amount:       tx.Amount,
			Currency:     tx.Currency,
			Description:  tx.Description,
			Counterparty: tx.Counterparty,
			IBAN:         tx.IBAN,
			Reference:    tx.Reference,
			Source:       tx.Source,
			ContentHash:  tx.ContentHash,
			Matched:      false,
		}
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner"}, {Name: "content_hash"}},
		DoNothing: true,
	}).Create(&rows)
	if result.Error != nil {
		return 0, 0, fmt.Errorf("upserting transactions: %w", result.Error)
	}

	inserted = int(result.RowsAffected)
	return inserted, len(txs) - inserted, nil
}

// ListUnmatchedTransactions returns owner's unmatched transactions, newest
// first.
func (s *Store) ListUnmatchedTransactions(ctx context.Context, owner string) ([]model.BankTransaction, error) {
	var rows []transactionRow
	err := s.db.WithContext(ctx).
		Where("owner = ? AND matched = ?", owner, false).
		Order("tx_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing unmatched transactions: %w", err)
	}
	out := make([]model.BankTransaction, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// ListMatchedTransactions returns owner's most recently dated matched
// transactions, up to limit.
func (s *Store) ListMatchedTransactions(ctx context.Context, owner string, limit int) ([]model.BankTransaction, error) {
	var rows []transactionRow
	err := s.db.WithContext(ctx).
		Where("owner = ? AND matched = ?", owner, true).
		Order("tx_date DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing matched transactions: %w", err)
	}
	out := make([]model.BankTransaction, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// ListOpenInvoices returns owner's open sales invoices, newest first.
func (s *Store) ListOpenInvoices(ctx context.Context, owner string) ([]model.InvoiceLite, error) {
	var rows []invoiceRow
	err := s.db.WithContext(ctx).
		Where("owner = ? AND status IN ?", owner, []string{string(model.InvoiceDraft), string(model.InvoiceSent)}).
		Order("issue_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing open invoices: %w", err)
	}
	out := make([]model.InvoiceLite, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// ListOpenPurchases returns owner's open purchase invoices, newest first.
func (s *Store) ListOpenPurchases(ctx context.Context, owner string) ([]model.PurchaseLite, error) {
	var rows []purchaseRow
	err := s.db.WithContext(ctx).
		Where("owner = ? AND status IN ?", owner, []string{string(model.PurchaseDraft), string(model.PurchaseBooked)}).
		Order("invoice_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing open purchases: %w", err)
	}
	out := make([]model.PurchaseLite, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// AddInvoice stores a sales invoice projection, assigning an ID when absent.
func (s *Store) AddInvoice(ctx context.Context, owner string, inv model.InvoiceLite) (string, error) {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	row := invoiceRow{
		ID:        inv.ID,
		Owner:     owner,
		NumberStr: inv.Number,
		Total:     inv.Total,
		IssueDate: inv.Date,
		Status:    string(inv.Status),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("adding invoice: %w", err)
	}
	return inv.ID, nil
}

// AddPurchase stores a purchase invoice projection, assigning an ID when
// absent.
func (s *Store) AddPurchase(ctx context.Context, owner string, pur model.PurchaseLite) (string, error) {
	if pur.ID == "" {
		pur.ID = uuid.NewString()
	}
	row := purchaseRow{
		ID:          pur.ID,
		Owner:       owner,
		NumberStr:   pur.Number,
		Total:       pur.Total,
		InvoiceDate: pur.Date,
		Status:      string(pur.Status),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("adding purchase: %w", err)
	}
	return pur.ID, nil
}

// ReconcileInvoicePayment atomically links a transaction to an invoice. The
// transaction must be unmatched and the invoice open; on any violation a
// *reconcile.Error is returned and nothing changes. The invoice is marked
// paid when the transaction covers its total.
func (s *Store) ReconcileInvoicePayment(ctx context.Context, owner, txID, invoiceID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockTransaction(tx, owner, txID)
		if err != nil {
			return err
		}

		var inv invoiceRow
		if err := tx.Where("id = ? AND owner = ?", invoiceID, owner).First(&inv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &reconcile.Error{Reason: "invoice not found"}
			}
			return fmt.Errorf("loading invoice: %w", err)
		}
		if !model.InvoiceStatus(inv.Status).Open() {
			return &reconcile.Error{Reason: fmt.Sprintf("invoice %s is not open (status %s)", inv.NumberStr, inv.Status)}
		}

		updates := map[string]any{"matched": true, "matched_invoice_id": invoiceID}
		if err := tx.Model(&transactionRow{}).Where("id = ?", row.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("updating transaction: %w", err)
		}

		if row.Amount.GreaterThanOrEqual(inv.Total) {
			if err := tx.Model(&invoiceRow{}).Where("id = ?", inv.ID).
				Update("status", string(model.InvoicePaid)).Error; err != nil {
				return fmt.Errorf("updating invoice status: %w", err)
			}
		}
		return nil
	})
}

// ReconcilePurchasePayment atomically links a transaction to a purchase
// invoice, with the same state rules as ReconcileInvoicePayment.
func (s *Store) ReconcilePurchasePayment(ctx context.Context, owner, txID, purchaseID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockTransaction(tx, owner, txID)
		if err != nil {
			return err
		}

		var pur purchaseRow
		if err := tx.Where("id = ? AND owner = ?", purchaseID, owner).First(&pur).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &reconcile.Error{Reason: "purchase not found"}
			}
			return fmt.Errorf("loading purchase: %w", err)
		}
		if !model.PurchaseStatus(pur.Status).Open() {
			return &reconcile.Error{Reason: fmt.Sprintf("purchase %s is not open (status %s)", pur.NumberStr, pur.Status)}
		}

		updates := map[string]any{"matched": true, "matched_purchase_id": purchaseID}
		if err := tx.Model(&transactionRow{}).Where("id = ?", row.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("updating transaction: %w", err)
		}

		if row.Amount.Abs().GreaterThanOrEqual(pur.Total) {
			if err := tx.Model(&purchaseRow{}).Where("id = ?", pur.ID).
				Update("status", string(model.PurchasePaid)).Error; err != nil {
				return fmt.Errorf("updating purchase status: %w", err)
			}
		}
		return nil
	})
}

func lockTransaction(tx *gorm.DB, owner, txID string) (transactionRow, error) {
	var row transactionRow
	if err := tx.Where("id = ? AND owner = ?", txID, owner).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return transactionRow{}, &reconcile.Error{Reason: "transaction not found"}
		}
		return transactionRow{}, fmt.Errorf("loading transaction: %w", err)
	}
	if row.Matched {
		return transactionRow{}, &reconcile.Error{Reason: "transaction already matched"}
	}
	return row, nil
}
