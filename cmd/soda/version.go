package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soda/internal/core/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bi := version.Info("soda")
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "soda %s (commit %s, built %s, %s)\n", bi.Version, bi.Commit, bi.Date, bi.Go)
			return err
		},
	}
}
