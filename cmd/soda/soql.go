package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) soqlCmd() *cobra.Command {
	var rows rowFlags
	cmd := &cobra.Command{
		Use:   "soql",
		Short: "Print a row query string",
		Long: `Print a row query string. Clauses are emitted in a fixed order
whatever the flag order; --limit is lowered to 1000.

Example:
  soda soql --select name,age --where "age > 21" --order age --direction desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := rows.builder(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), b.String())
			return err
		},
	}
	rows.bind(cmd)
	return cmd
}
