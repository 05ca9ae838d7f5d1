package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soda/internal/services/api/query/domain"
	querysvc "soda/internal/services/api/query/service"
)

func (a *app) uriCmd() *cobra.Command {
	var (
		req  domain.URIRequest
		page int
		rev  int64
		rows rowFlags
	)
	kinds := make([]string, 0, len(domain.Kinds()))
	for _, k := range domain.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:       "uri <kind>",
		Short:     "Print the endpoint URI of one kind",
		ValidArgs: kinds,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Long: `Print the endpoint URI of one kind.

Example:
  soda uri metadata --host data.example.org --id abcd-1234
  soda uri metadata-list --page 2
  soda uri query --id abcd-1234 --where "age > 21" --limit 10
  soda uri job --revision 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := req
			in.Host = a.settings.Host
			if cmd.Flags().Changed("page") {
				in.Page = &page
			}
			if cmd.Flags().Changed("revision") {
				in.Revision = &rev
			}
			kind := domain.Kind(args[0])
			if kind == domain.KindQuery {
				q := rows.query(cmd)
				if err := validate(q); err != nil {
					return err
				}
				in.Query = &q
			}
			out, err := querysvc.New(a.settings.Location).URI(cmd.Context(), kind, in)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.URI)
			return err
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&req.ID, "id", "", "4x4 resource identifier")
	fs.StringVar(&req.RowID, "row-id", "", "row identifier (resource)")
	fs.IntVar(&page, "page", 1, "page number (metadata-list)")
	fs.StringVar(&req.Category, "category", "", "category name (category)")
	fs.StringVar(&req.EndpointPath, "endpoint", "", "publishing endpoint path (upload, source, apply)")
	fs.Int64Var(&rev, "revision", 0, "revision number (job)")
	rows.bind(cmd)
	return cmd
}
