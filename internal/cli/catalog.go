package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scanenv/internal/app"
)

type catalogOptions struct {
	Catalog  string
	Validate bool
}

func newCatalogCommand() *cobra.Command {
	opts := catalogOptions{}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the effective dependency catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := app.NewService()
			result, err := service.InspectCatalog(cmd.Context(), app.CatalogRequest{
				CatalogPath: resolveString(cmd, opts.Catalog, "catalog", "catalog"),
				Validate:    opts.Validate,
			})
			if err != nil {
				return err
			}
			for _, entry := range result.Entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-10s %s\n", entry.Name, entry.Version, entry.Prefix)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "Catalog overlay file")
	cmd.Flags().BoolVar(&opts.Validate, "validate", false, "Validate entries before printing")

	_ = viper.BindPFlag("catalog", cmd.Flags().Lookup("catalog"))

	return cmd
}
