package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"soda/internal/adapters/soda"
)

func (a *app) fetchCmd() *cobra.Command {
	var etag string
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a URI and print the raw response body",
	}
	cmd.PersistentFlags().StringVar(&etag, "etag", "", "send If-None-Match (metadata)")

	var rows rowFlags
	query := &cobra.Command{
		Use:   "query <id>",
		Short: "Run a row query against a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := rows.builder(cmd)
			if err != nil {
				return err
			}
			res, err := newClient(a.settings).Query(cmd.Context(), args[0], b)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), res)
		},
	}
	rows.bind(query)

	metadata := &cobra.Command{
		Use:   "metadata <id>",
		Short: "Fetch view metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient(a.settings).Metadata(cmd.Context(), args[0], etag)
			if err != nil {
				return err
			}
			if res.NotModified {
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), "not modified (etag %s)\n", res.ETag)
				return err
			}
			return write(cmd.OutOrStdout(), res)
		},
	}

	var f catalogFlags
	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "Run a discovery search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := f.catalogQuery(cmd, a.settings.Location)
			if err != nil {
				return err
			}
			res, err := newClient(a.settings).Search(cmd.Context(), q)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), res)
		},
	}
	f.bind(catalog)

	cmd.AddCommand(query, metadata, catalog)
	return cmd
}

func write(w io.Writer, res soda.Result) error {
	if _, err := w.Write(res.Body); err != nil {
		return err
	}
	if len(res.Body) > 0 && res.Body[len(res.Body)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
