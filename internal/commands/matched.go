package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/afletter-dev/afletter/internal/model"
)

func newMatchedCommand() *cobra.Command {
	var configPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "matched",
		Short: "Show recently reconciled transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatched(cmd, configPath, limit)
		},
	}

	addConfigFlag(cmd, &configPath)
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of transactions to show")

	return cmd
}

func runMatched(cmd *cobra.Command, configPath string, limit int) error {
	cfg, store, err := openLedger(configPath)
	if err != nil {
		return err
	}

	matched, err := store.ListMatchedTransactions(cmd.Context(), cfg.Owner, limit)
	if err != nil {
		return err
	}

	if len(matched) == 0 {
		fmt.Println("No reconciled transactions yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDESCRIPTION\tAMOUNT\tLINKED TO")
	for _, tx := range matched {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			tx.Date.Format("2006-01-02"),
			orDash(tx.Description),
			tx.Amount.StringFixed(2),
			linkedTarget(tx))
	}
	return w.Flush()
}

func linkedTarget(tx model.BankTransaction) string {
	switch {
	case tx.MatchedInvoiceID != "":
		return "invoice " + tx.MatchedInvoiceID
	case tx.MatchedPurchaseID != "":
		return "purchase " + tx.MatchedPurchaseID
	default:
		return "-"
	}
}
