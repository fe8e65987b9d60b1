package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/equivalency"
	"github.com/rshade/carbonfocus/internal/history"
	"github.com/rshade/carbonfocus/internal/report"
)

// NewHistoryCmd creates the history command group for saved
// calculations.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List and inspect saved calculations",
	}
	cmd.AddCommand(newHistoryListCmd(), newHistoryShowCmd())
	return cmd
}

// openHistory loads the configured history store.
func openHistory(cmd *cobra.Command) (*history.Store, error) {
	cfg := configFromContext(cmd.Context())
	store, err := history.NewStore(cfg.History.Path)
	if err != nil {
		return nil, err
	}
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

// newHistoryListCmd lists saved records, newest first.
func newHistoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved calculations, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openHistory(cmd)
			if err != nil {
				return err
			}

			records := store.List()
			if len(records) == 0 {
				cmd.Println("No saved calculations")
				return nil
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-26s  %-20s  %-20s  %s\n", "ID", "DATE", "ORGANIZATION", "TOTAL")
			for _, r := range records {
				fmt.Fprintf(w, "%-26s  %-20s  %-20s  %s\n",
					r.ID, r.Date, r.Organization, equivalency.FormatMass(r.Totals().Total))
			}
			return nil
		},
	}
}

// newHistoryShowCmd renders one saved record as a summary.
func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory(cmd)
			if err != nil {
				return err
			}

			record, err := store.Get(args[0])
			if err != nil {
				return err
			}

			cat, err := loadCatalog(configFromContext(cmd.Context()))
			if err != nil {
				return err
			}

			totals := record.Totals()
			in := report.Input{
				Organization:  record.Organization,
				Data:          record.Data,
				Totals:        totals,
				Equivalencies: equivalency.Convert(totals.Total, equivalency.FactorsFromCatalog(cat.EquivalencyFactors)),
			}

			cmd.Printf("Saved: %s\n\n", record.Date)
			return renderSummary(cmd.OutOrStdout(), in)
		},
	}
}
