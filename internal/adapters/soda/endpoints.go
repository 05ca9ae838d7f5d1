package soda

import (
	"context"

	"soda/internal/core/catalog"
	"soda/internal/core/soql"
	"soda/internal/core/sodauri"
)

// Query runs a row query against resource id
func (c *Client) Query(ctx context.Context, id string, q *soql.Builder) (Result, error) {
	u, err := sodauri.ForQuery(c.opts.Host, id, q)
	if err != nil {
		return Result{}, err
	}
	return c.Do(ctx, u, "")
}

// Row fetches every row of id, or the single row rowID when it is not empty
func (c *Client) Row(ctx context.Context, id, rowID string) (Result, error) {
	u, err := sodauri.ForResourceAPI(c.opts.Host, id, rowID)
	if err != nil {
		return Result{}, err
	}
	return c.Do(ctx, u, "")
}

// Metadata fetches the view metadata for id with an optional etag
func (c *Client) Metadata(ctx context.Context, id, etag string) (Result, error) {
	u, err := sodauri.ForMetadata(c.opts.Host, id)
	if err != nil {
		return Result{}, err
	}
	return c.Do(ctx, u, etag)
}

// MetadataPage fetches one page of the portal's view list, pages start at 1
func (c *Client) MetadataPage(ctx context.Context, page int) (Result, error) {
	u, err := sodauri.ForMetadataList(c.opts.Host, page)
	if err != nil {
		return Result{}, err
	}
	return c.Do(ctx, u, "")
}

// Revision fetches the publishing revision list for id
func (c *Client) Revision(ctx context.Context, id string) (Result, error) {
	u, err := sodauri.ForRevision(c.opts.Host, id)
	if err != nil {
		return Result{}, err
	}
	return c.Do(ctx, u, "")
}

// Search runs a discovery query; the host comes from the query's location, not the client
func (c *Client) Search(ctx context.Context, q *catalog.Query) (Result, error) {
	if q == nil {
		q = catalog.New()
	}
	u, err := q.URI()
	if err != nil {
		return Result{}, err
	}
	return c.Do(ctx, u, "")
}
