// Package reconcile commits confirmed matches between bank transactions and
// open invoices or purchases. The actual match-and-flip is a single atomic
// operation inside the ledger store; this package never does a local
// check-then-act, so a concurrent confirm simply makes the second one fail
// cleanly.
package reconcile

import (
	"context"
	"fmt"

	"github.com/afletter-dev/afletter/internal/model"
)

// Error means the transaction or target was in an invalid state at commit
// time. Nothing was changed; the caller should refresh and retry with current
// data.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return e.Reason }

// Store is the transactional ledger surface the committer delegates to. Both
// operations must verify state and flip it in one transaction.
type Store interface {
	ReconcileInvoicePayment(ctx context.Context, owner, txID, invoiceID string) error
	ReconcilePurchasePayment(ctx context.Context, owner, txID, purchaseID string) error
}

// Committer applies confirmed matches through a Store.
type Committer struct {
	store Store
}

// NewCommitter creates a Committer backed by store.
func NewCommitter(store Store) *Committer {
	return &Committer{store: store}
}

// ConfirmMatch links a transaction to the given target and marks it matched.
func (c *Committer) ConfirmMatch(ctx context.Context, owner, txID string, kind model.TargetKind, targetID string) error {
	switch kind {
	case model.TargetInvoice:
		return c.store.ReconcileInvoicePayment(ctx, owner, txID, targetID)
	case model.TargetPurchase:
		return c.store.ReconcilePurchasePayment(ctx, owner, txID, targetID)
	default:
		return fmt.Errorf("unknown target kind %q", kind)
	}
}
