package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/afletter-dev/afletter/internal/match"
	"github.com/afletter-dev/afletter/internal/model"
)

func newSuggestCommand() *cobra.Command {
	var configPath string
	var search string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "List unmatched transactions with match suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, configPath, search)
		},
	}

	addConfigFlag(cmd, &configPath)
	cmd.Flags().StringVar(&search, "search", "", "filter on description, counterparty or reference")

	return cmd
}

func runSuggest(cmd *cobra.Command, configPath, search string) error {
	cfg, store, err := openLedger(configPath)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	unmatched, err := store.ListUnmatchedTransactions(ctx, cfg.Owner)
	if err != nil {
		return err
	}
	invoices, err := store.ListOpenInvoices(ctx, cfg.Owner)
	if err != nil {
		return err
	}
	purchases, err := store.ListOpenPurchases(ctx, cfg.Owner)
	if err != nil {
		return err
	}

	if search != "" {
		unmatched = filterTransactions(unmatched, search)
	}

	if len(unmatched) == 0 {
		fmt.Println("No unmatched transactions.")
		return nil
	}

	suggester := match.NewSuggester(cfg.Matching.WindowDays)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tCOUNTERPARTY\tAMOUNT\tSUGGESTION")
	for _, tx := range unmatched {
		s := suggester.Suggest(tx, invoices, purchases)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.ID,
			tx.Date.Format("2006-01-02"),
			orDash(tx.Description),
			orDash(firstNonEmpty(tx.Counterparty, tx.IBAN)),
			tx.Amount.StringFixed(2),
			formatSuggestion(s))
	}
	return w.Flush()
}

func filterTransactions(txs []model.BankTransaction, search string) []model.BankTransaction {
	q := strings.ToLower(search)
	var out []model.BankTransaction
	for _, tx := range txs {
		if strings.Contains(strings.ToLower(tx.Description), q) ||
			strings.Contains(strings.ToLower(tx.Counterparty), q) ||
			strings.Contains(strings.ToLower(tx.Reference), q) {
			out = append(out, tx)
		}
	}
	return out
}

func formatSuggestion(s *model.Suggestion) string {
	if s == nil {
		return "-"
	}
	switch s.Kind {
	case model.TargetInvoice:
		return fmt.Sprintf("invoice %s (%s)", s.Label, s.TargetID)
	default:
		return fmt.Sprintf("purchase %s (%s)", s.Label, s.TargetID)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
