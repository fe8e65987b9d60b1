package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/engine"
)

// NewCatalogCmd creates the catalog command group for browsing the
// emission factor dataset.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the emission factor catalog",
	}
	cmd.AddCommand(newCatalogCategoriesCmd(), newCatalogSourcesCmd())
	return cmd
}

// newCatalogCategoriesCmd lists the categories of every scope.
func newCatalogCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List emission categories per scope",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(configFromContext(cmd.Context()))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, scope := range engine.Scopes {
				heading := fmt.Sprintf("Scope %d", scope.Number())
				fmt.Fprintln(w, heading)
				fmt.Fprintln(w, strings.Repeat("-", len(heading)))
				for _, c := range cat.ListCategories(scope) {
					fmt.Fprintf(w, "  %-24s %s\n", c.ID, c.Name)
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}

// newCatalogSourcesCmd lists the sources of one scope, optionally
// narrowed to a category, with their factors and units.
func newCatalogSourcesCmd() *cobra.Command {
	var categoryFilter string

	cmd := &cobra.Command{
		Use:   "sources <scope>",
		Short: "List emission sources and factors for a scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := engine.Scope(args[0])
			if !scope.Valid() {
				return fmt.Errorf("%w: %q (expected scope1, scope2 or scope3)", engine.ErrUnknownScope, args[0])
			}

			cat, err := loadCatalog(configFromContext(cmd.Context()))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, category := range cat.ListCategories(scope) {
				if categoryFilter != "" && category.ID != categoryFilter {
					continue
				}

				fmt.Fprintln(w, category.Name)
				fmt.Fprintln(w, strings.Repeat("-", len(category.Name)))
				for _, source := range cat.ListSources(scope, category.ID) {
					record, err := cat.Factor(scope, category.ID, source)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "  %-24s %10g %s\n", source, record.Factor, record.Unit)
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFilter, "category", "", "limit output to one category ID")
	return cmd
}
