// Package http provides the query preview endpoints
package http

import (
	stdhttp "net/http"

	"soda/internal/modkit/httpkit"
	"soda/internal/services/api/query/domain"
)

// Register mounts the preview endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/uris", h.kinds)
	httpkit.PostJSON(r, "/uris/{kind}", h.uri)
	httpkit.PostJSON(r, "/soql", h.soql)
	httpkit.PostJSON(r, "/catalog", h.catalog)
}

type handlers struct{ svc domain.ServicePort }

// @Summary List the endpoint kinds accepted by POST /uris/{kind}
// @Tags Query
// @Produce json
// @Success 200 {array} string
// @Router /uris [get]
func (h *handlers) kinds(_ *stdhttp.Request) (any, error) {
	return domain.Kinds(), nil
}

// @Summary Render one endpoint URI
// @Tags Query
// @Accept json
// @Produce json
// @Param kind path string true "endpoint kind"
// @Param payload body domain.URIRequest true "arguments"
// @Success 200 {object} domain.URIResponse
// @Router /uris/{kind} [post]
func (h *handlers) uri(r *stdhttp.Request, in domain.URIRequest) (any, error) {
	return h.svc.URI(r.Context(), domain.Kind(httpkit.Param(r, "kind")), in)
}

// @Summary Render a row query string
// @Tags Query
// @Accept json
// @Produce json
// @Param payload body domain.RowQuery true "clauses"
// @Success 200 {object} domain.QueryResponse
// @Router /soql [post]
func (h *handlers) soql(r *stdhttp.Request, in domain.RowQuery) (any, error) {
	return h.svc.RowQuery(r.Context(), in)
}

// @Summary Render a discovery search URI
// @Tags Query
// @Accept json
// @Produce json
// @Param payload body domain.CatalogRequest true "facets"
// @Success 200 {object} domain.CatalogResponse
// @Router /catalog [post]
func (h *handlers) catalog(r *stdhttp.Request, in domain.CatalogRequest) (any, error) {
	return h.svc.Catalog(r.Context(), in)
}
