// Package service turns preview DTOs into core builders and renders them
package service

import (
	"context"
	"net/url"

	"soda/internal/core/catalog"
	"soda/internal/core/soql"
	"soda/internal/core/sodauri"
	perr "soda/internal/platform/errors"
	"soda/internal/platform/logger"
	"soda/internal/services/api/query/domain"
)

// Service renders URIs and query strings from request DTOs
type Service interface {
	domain.ServicePort
}

type svc struct {
	defaultLocation catalog.Location
}

// New returns a Service; loc is used when a catalog request names no location
func New(loc catalog.Location) Service {
	return &svc{defaultLocation: loc}
}

// URI renders the endpoint URI for kind
func (s *svc) URI(ctx context.Context, kind domain.Kind, in domain.URIRequest) (domain.URIResponse, error) {
	u, err := s.build(kind, in)
	if err != nil {
		logger.C(ctx).Debug().Err(err).Str("kind", string(kind)).Msg("uri rejected")
		return domain.URIResponse{}, err
	}
	return domain.URIResponse{Kind: kind, URI: u.String()}, nil
}

func (s *svc) build(kind domain.Kind, in domain.URIRequest) (*url.URL, error) {
	switch kind {
	case domain.KindMetadata:
		return sodauri.ForMetadata(in.Host, in.ID)
	case domain.KindMetadataList:
		page := 1
		if in.Page != nil {
			page = *in.Page
		}
		return sodauri.ForMetadataList(in.Host, page)
	case domain.KindResource:
		return sodauri.ForResourceAPI(in.Host, in.ID, in.RowID)
	case domain.KindResourcePage:
		return sodauri.ForResourcePage(in.Host, in.ID)
	case domain.KindResourceAbout:
		return sodauri.ForResourceAboutPage(in.Host, in.ID)
	case domain.KindResourceDocs:
		return sodauri.ForResourceAPIDocPage(in.Host, in.ID)
	case domain.KindQuery:
		var q *soql.Builder
		if in.Query != nil {
			b, err := RowBuilder(*in.Query)
			if err != nil {
				return nil, err
			}
			q = b
		}
		return sodauri.ForQuery(in.Host, in.ID, q)
	case domain.KindCategory:
		return sodauri.ForCategoryPage(in.Host, in.Category)
	case domain.KindRevision:
		return sodauri.ForRevision(in.Host, in.ID)
	case domain.KindUpload:
		return sodauri.ForUpload(in.Host, in.EndpointPath)
	case domain.KindSource:
		return sodauri.ForSource(in.Host, in.EndpointPath)
	case domain.KindApply:
		return sodauri.ForApply(in.Host, in.EndpointPath)
	case domain.KindJob:
		if in.Revision == nil {
			return nil, perr.MissingArgf("revision", "revision number is required")
		}
		return sodauri.ForJob(in.Host, *in.Revision)
	default:
		return nil, perr.NotFoundf("unknown uri kind %q", kind)
	}
}

// RowQuery renders the row query string
func (s *svc) RowQuery(_ context.Context, in domain.RowQuery) (domain.QueryResponse, error) {
	b, err := RowBuilder(in)
	if err != nil {
		return domain.QueryResponse{}, err
	}
	return domain.QueryResponse{Query: b.String()}, nil
}

// Catalog renders the discovery URI
func (s *svc) Catalog(_ context.Context, in domain.CatalogRequest) (domain.CatalogResponse, error) {
	q, err := CatalogQuery(in, s.defaultLocation)
	if err != nil {
		return domain.CatalogResponse{}, err
	}
	u, err := q.URI()
	if err != nil {
		return domain.CatalogResponse{}, err
	}
	return domain.CatalogResponse{URI: u.String(), Query: u.RawQuery}, nil
}

// RowBuilder converts a RowQuery into a builder, returning the first recorded error
func RowBuilder(in domain.RowQuery) (*soql.Builder, error) {
	dir, err := soql.ParseDirection(in.Direction)
	if err != nil {
		return nil, perr.WithField(err, "direction")
	}
	b := soql.New()
	if len(in.Select) > 0 {
		b.Select(in.Select...)
	}
	if in.Where != "" {
		b.Where(in.Where)
	}
	if len(in.Group) > 0 {
		b.GroupBy(in.Group...)
	}
	if in.Having != "" {
		b.Having(in.Having)
	}
	if len(in.Order) > 0 {
		b.OrderBy(dir, in.Order...)
	}
	if in.Offset != nil {
		b.Offset(*in.Offset)
	}
	if in.Limit != nil {
		b.Limit(*in.Limit)
	}
	if in.Search != "" {
		b.Search(in.Search)
	}
	return b, b.Err()
}

// CatalogQuery converts a CatalogRequest into a catalog query, returning the first recorded error
func CatalogQuery(in domain.CatalogRequest, def catalog.Location) (*catalog.Query, error) {
	loc := def
	if in.Location != "" {
		l, err := catalog.ParseLocation(in.Location)
		if err != nil {
			return nil, perr.WithField(err, "location")
		}
		loc = l
	}

	q := catalog.New().ForLocation(loc)
	if in.SearchContext != "" {
		q.ForSearchContext(in.SearchContext)
	}
	if in.Q != "" {
		q.ByQueryTerm(in.Q)
	}
	q.ByAssetID(in.IDs...).
		ByDomain(in.Domains...).
		ByCategory(in.Categories...).
		ByTag(in.Tags...).
		ByAttribution(in.Attributions...).
		ByLicense(in.Licenses...).
		ByParentID(in.ParentIDs...).
		ByOwner(in.OwnerIDs...).
		ByGrantedShares(in.SharedTo...).
		ByColumnNames(in.ColumnNames...)
	for _, t := range in.Types {
		q.ByType(catalog.AssetType(t))
	}
	for _, a := range in.ApprovalStatus {
		q.ByApprovalStatus(catalog.ApprovalStatus(a))
	}
	if in.Provenance != "" {
		q.ByProvenance(catalog.Provenance(in.Provenance))
	}
	if in.Visibility != "" {
		q.ByVisibility(catalog.Visibility(in.Visibility))
	}
	flag(in.Public, q.OnlyPublicAssets, q.OnlyPrivateAssets)
	flag(in.Published, q.OnlyPublishedAssets, q.OnlyUnpublishedAssets)
	flag(in.Hidden, q.OnlyHiddenAssets, q.OnlyUnhiddenAssets)
	flag(in.Derived, q.OnlyDerivedAssets, q.OnlyBaseAssets)
	for _, f := range in.SortAscending {
		q.SortAscendingBy(f)
	}
	for _, f := range in.SortDescending {
		q.SortDescendingBy(f)
	}
	for k, v := range in.Metadata {
		q.ByMetadata(k, v)
	}
	if in.BoostOfficial != 0 {
		q.Boost(in.BoostOfficial)
	}
	if in.Limit != nil {
		q.Limit(*in.Limit)
	}
	if in.Offset != nil {
		q.Offset(*in.Offset)
	}
	if in.ScrollID != "" {
		q.WithScrollID(in.ScrollID)
	}
	return q, q.Err()
}

func flag(v *bool, yes, no func() *catalog.Query) {
	if v == nil {
		return
	}
	if *v {
		yes()
		return
	}
	no()
}
