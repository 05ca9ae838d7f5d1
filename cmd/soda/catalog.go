package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) catalogCmd() *cobra.Command {
	var f catalogFlags
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print a discovery search URI",
		Long: `Print a discovery search URI.

Example:
  soda catalog --q crime --domains data.example.org --only dataset --limit 20
  soda catalog --location eu --public --order-desc updatedAt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := f.catalogQuery(cmd, a.settings.Location)
			if err != nil {
				return err
			}
			u, err := q.URI()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u.String())
			return err
		},
	}
	f.bind(cmd)
	return cmd
}
