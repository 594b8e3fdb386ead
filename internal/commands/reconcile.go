package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afletter-dev/afletter/internal/model"
	"github.com/afletter-dev/afletter/internal/reconcile"
)

func newReconcileCommand() *cobra.Command {
	var configPath string
	var invoiceID string
	var purchaseID string

	cmd := &cobra.Command{
		Use:   "reconcile <transaction-id>",
		Short: "Link a transaction to an invoice or purchase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (invoiceID == "") == (purchaseID == "") {
				return fmt.Errorf("exactly one of --invoice or --purchase is required")
			}

			kind := model.TargetInvoice
			targetID := invoiceID
			if purchaseID != "" {
				kind = model.TargetPurchase
				targetID = purchaseID
			}

			return runReconcile(cmd, configPath, args[0], kind, targetID)
		},
	}

	addConfigFlag(cmd, &configPath)
	cmd.Flags().StringVar(&invoiceID, "invoice", "", "invoice ID to link")
	cmd.Flags().StringVar(&purchaseID, "purchase", "", "purchase ID to link")

	return cmd
}

func runReconcile(cmd *cobra.Command, configPath, txID string, kind model.TargetKind, targetID string) error {
	cfg, store, err := openLedger(configPath)
	if err != nil {
		return err
	}

	committer := reconcile.NewCommitter(store)
	if err := committer.ConfirmMatch(cmd.Context(), cfg.Owner, txID, kind, targetID); err != nil {
		return err
	}

	fmt.Printf("Reconciled transaction %s with %s %s\n", txID, kind, targetID)
	return nil
}
