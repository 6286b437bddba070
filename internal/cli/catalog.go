package cli

import (
	"github.com/spf13/cobra"

	cliadapter "github.com/example/encore/internal/adapters/cli"
	"github.com/example/encore/internal/wire"
)

// CatalogCmd returns the catalog command
func CatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every technique and setback",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			annotationConfigOptional: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := wire.Catalog()
			cliadapter.PrintCatalog(cmd.OutOrStdout(), catalog.Techniques, catalog.Setbacks)
			return nil
		},
	}
}
