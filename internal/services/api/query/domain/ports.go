package domain

import "context"

// ServicePort is what the http layer needs from the service
type ServicePort interface {
	URI(ctx context.Context, kind Kind, in URIRequest) (URIResponse, error)
	RowQuery(ctx context.Context, in RowQuery) (QueryResponse, error)
	Catalog(ctx context.Context, in CatalogRequest) (CatalogResponse, error)
}
