package main

import (
	"github.com/spf13/cobra"

	"soda/internal/core/catalog"
	"soda/internal/core/fourbyfour"
	"soda/internal/core/soql"
	"soda/internal/platform/net/http/bind"
	"soda/internal/services/api/query/domain"
	querysvc "soda/internal/services/api/query/service"
)

// validate applies the struct rules the preview API enforces on request bodies
func validate(v any) error {
	if err := fourbyfour.RegisterValidation(); err != nil {
		return err
	}
	return bind.Validate(v)
}

type rowFlags struct {
	q domain.RowQuery

	limit  int
	offset int
}

func (f *rowFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringSliceVar(&f.q.Select, "select", nil, "columns to select (default *)")
	fs.StringVar(&f.q.Where, "where", "", "row filter")
	fs.StringSliceVar(&f.q.Group, "group", nil, "group by columns")
	fs.StringVar(&f.q.Having, "having", "", "group filter")
	fs.StringSliceVar(&f.q.Order, "order", nil, "order by columns")
	fs.StringVar(&f.q.Direction, "direction", "asc", "order direction (asc, desc)")
	fs.IntVar(&f.limit, "limit", 0, "maximum rows, capped at 1000")
	fs.IntVar(&f.offset, "offset", 0, "rows to skip")
	fs.StringVar(&f.q.Search, "q", "", "full text search")
}

// query returns the row query with only the flags the user set
func (f *rowFlags) query(cmd *cobra.Command) domain.RowQuery {
	q := f.q
	if cmd.Flags().Changed("limit") {
		q.Limit = &f.limit
	}
	if cmd.Flags().Changed("offset") {
		q.Offset = &f.offset
	}
	return q
}

// builder validates the flags and returns the row query builder
func (f *rowFlags) builder(cmd *cobra.Command) (*soql.Builder, error) {
	q := f.query(cmd)
	if err := validate(q); err != nil {
		return nil, err
	}
	return querysvc.RowBuilder(q)
}

type catalogFlags struct {
	r domain.CatalogRequest

	public, published, hidden, derived bool
	limit, offset                      int
}

func (f *catalogFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.r.Location, "location", "", "discovery region: us or eu (default $SODA_LOCATION)")
	fs.StringVar(&f.r.SearchContext, "search-context", "", "domain whose catalog view is searched")
	fs.StringVar(&f.r.Q, "q", "", "free text query")
	fs.StringSliceVar(&f.r.IDs, "ids", nil, "asset ids")
	fs.StringSliceVar(&f.r.Domains, "domains", nil, "domains")
	fs.StringSliceVar(&f.r.Categories, "categories", nil, "categories")
	fs.StringSliceVar(&f.r.Tags, "tags", nil, "tags")
	fs.StringSliceVar(&f.r.Types, "only", nil, "asset types (dataset, map, chart, ...)")
	fs.StringSliceVar(&f.r.Attributions, "attribution", nil, "attributions")
	fs.StringSliceVar(&f.r.Licenses, "license", nil, "licenses")
	fs.StringSliceVar(&f.r.ParentIDs, "derived-from", nil, "parent asset ids")
	fs.StringSliceVar(&f.r.OwnerIDs, "for-user", nil, "owner ids")
	fs.StringSliceVar(&f.r.SharedTo, "shared-to", nil, "users or teams the asset is shared to")
	fs.StringSliceVar(&f.r.ColumnNames, "column-names", nil, "column names")
	fs.StringSliceVar(&f.r.ApprovalStatus, "approval-status", nil, "approved, pending, rejected, not_ready")
	fs.StringVar(&f.r.Provenance, "provenance", "", "official or community")
	fs.StringVar(&f.r.Visibility, "visibility", "", "open or internal")
	fs.BoolVar(&f.public, "public", false, "public (true) or private (false) assets")
	fs.BoolVar(&f.published, "published", false, "published (true) or working copy (false) assets")
	fs.BoolVar(&f.hidden, "hidden", false, "explicitly hidden (true) or visible (false) assets")
	fs.BoolVar(&f.derived, "derived", false, "derived (true) or base (false) assets")
	fs.StringSliceVar(&f.r.SortAscending, "order-asc", nil, "ascending sort fields")
	fs.StringSliceVar(&f.r.SortDescending, "order-desc", nil, "descending sort fields")
	fs.Float64Var(&f.r.BoostOfficial, "boost", 0, "relevance boost for official assets")
	fs.IntVar(&f.limit, "limit", 0, "page size")
	fs.IntVar(&f.offset, "offset", 0, "results to skip")
	fs.StringVar(&f.r.ScrollID, "scroll-id", "", "deep scroll cursor")
	fs.StringToStringVar(&f.r.Metadata, "metadata", nil, "domain metadata filters as key=value")
}

// request returns the catalog request with only the flags the user set
func (f *catalogFlags) request(cmd *cobra.Command) domain.CatalogRequest {
	r := f.r
	fs := cmd.Flags()
	set := func(name string, v *bool) *bool {
		if fs.Changed(name) {
			return v
		}
		return nil
	}
	r.Public = set("public", &f.public)
	r.Published = set("published", &f.published)
	r.Hidden = set("hidden", &f.hidden)
	r.Derived = set("derived", &f.derived)
	if fs.Changed("limit") {
		r.Limit = &f.limit
	}
	if fs.Changed("offset") {
		r.Offset = &f.offset
	}
	return r
}

// catalogQuery validates the flags and returns the discovery query; def is the region when --location is unset
func (f *catalogFlags) catalogQuery(cmd *cobra.Command, def catalog.Location) (*catalog.Query, error) {
	r := f.request(cmd)
	if err := validate(r); err != nil {
		return nil, err
	}
	return querysvc.CatalogQuery(r, def)
}
