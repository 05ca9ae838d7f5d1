// Package catalog builds discovery (catalog search) queries
//
// A Query accumulates facets through chained calls. Scalar setters overwrite,
// set setters append across calls, and every mutator returns the receiver.
// A mutator that rejects its input records the error (see Err), applies
// nothing and still returns the receiver so chains stay intact.
//
// A Query is not safe for concurrent mutation
package catalog

import (
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"soda/internal/core/fourbyfour"
	perr "soda/internal/platform/errors"

	"golang.org/x/text/unicode/norm"
)

// Query is the accumulated state of a catalog search
type Query struct {
	version       Version
	location      Location
	searchContext string
	term          string
	provenance    Provenance
	visibility    Visibility
	limit         int
	offset        int
	scrollID      string
	boost         float64

	assetIDs      []string
	domains       []string
	categories    []string
	tags          []string
	types         []string
	attributions  []string
	licenses      []string
	parentIDs     []string
	ownerIDs      []string
	grantedShares []string
	columnNames   []string
	approvals     []string

	metadata map[string]string

	sortAsc  []string
	sortDesc []string

	public    Flag
	published Flag
	hidden    Flag
	derived   Flag

	err error
}

// New returns a Query for V1 in NorthAmerica with every collection empty
func New() *Query {
	return &Query{
		version:       V1,
		location:      NorthAmerica,
		assetIDs:      []string{},
		domains:       []string{},
		categories:    []string{},
		tags:          []string{},
		types:         []string{},
		attributions:  []string{},
		licenses:      []string{},
		parentIDs:     []string{},
		ownerIDs:      []string{},
		grantedShares: []string{},
		columnNames:   []string{},
		approvals:     []string{},
		metadata:      map[string]string{},
		sortAsc:       []string{},
		sortDesc:      []string{},
	}
}

func (q *Query) fail(err error) {
	if q.err == nil {
		q.err = err
	}
}

// Err returns the first error recorded by a mutator, if any
func (q *Query) Err() error { return q.err }

// Scalar facets

// ForVersion selects the API version
func (q *Query) ForVersion(v Version) *Query {
	q.version = v
	return q
}

// ForLocation selects the regional host
func (q *Query) ForLocation(l Location) *Query {
	q.location = l
	return q
}

// ForSearchContext scopes the search to one domain's catalog view
func (q *Query) ForSearchContext(domain string) *Query {
	q.searchContext = domain
	return q
}

// ByQueryTerm sets the free text search string
func (q *Query) ByQueryTerm(term string) *Query {
	q.term = term
	return q
}

// ByProvenance filters by publisher provenance
func (q *Query) ByProvenance(p Provenance) *Query {
	q.provenance = p
	return q
}

// ByVisibility filters by audience
func (q *Query) ByVisibility(v Visibility) *Query {
	q.visibility = v
	return q
}

// Boost weights official assets in relevance ranking
func (q *Query) Boost(factor float64) *Query {
	if factor < 0 {
		q.fail(perr.InvalidRangef("boost", "boost must not be negative, got %g", factor))
		return q
	}
	q.boost = factor
	return q
}

// Limit sets the page size
func (q *Query) Limit(n int) *Query {
	if n < 0 {
		q.fail(perr.InvalidRangef("limit", "limit must not be negative, got %d", n))
		return q
	}
	q.limit = n
	return q
}

// Offset sets the number of results to skip
func (q *Query) Offset(n int) *Query {
	if n < 0 {
		q.fail(perr.InvalidRangef("offset", "offset must not be negative, got %d", n))
		return q
	}
	q.offset = n
	return q
}

// WithScrollID continues a deep scroll from an opaque cursor
func (q *Query) WithScrollID(id string) *Query {
	q.scrollID = id
	return q
}

// Set facets

// ByAssetID appends asset ids. Any invalid id rejects the whole call
func (q *Query) ByAssetID(ids ...string) *Query {
	for _, id := range ids {
		if err := fourbyfour.Validate("ids", id); err != nil {
			q.fail(err)
			return q
		}
	}
	q.assetIDs = append(q.assetIDs, ids...)
	return q
}

// ByDomain appends domains
func (q *Query) ByDomain(domains ...string) *Query {
	q.domains = append(q.domains, domains...)
	return q
}

// ByCategory appends categories (NFC normalized)
func (q *Query) ByCategory(categories ...string) *Query {
	q.categories = appendNFC(q.categories, categories)
	return q
}

// ByTag appends tags (NFC normalized)
func (q *Query) ByTag(tags ...string) *Query {
	q.tags = appendNFC(q.tags, tags)
	return q
}

// ByType appends asset types
func (q *Query) ByType(types ...AssetType) *Query {
	for _, t := range types {
		q.types = append(q.types, string(t))
	}
	return q
}

// ByAttribution appends attributions
func (q *Query) ByAttribution(attributions ...string) *Query {
	q.attributions = append(q.attributions, attributions...)
	return q
}

// ByLicense appends licenses
func (q *Query) ByLicense(licenses ...string) *Query {
	q.licenses = append(q.licenses, licenses...)
	return q
}

// ByParentID appends parent asset ids
func (q *Query) ByParentID(ids ...string) *Query {
	q.parentIDs = append(q.parentIDs, ids...)
	return q
}

// ByOwner appends owner ids
func (q *Query) ByOwner(ids ...string) *Query {
	q.ownerIDs = append(q.ownerIDs, ids...)
	return q
}

// ByGrantedShares appends users or teams the asset is shared to
func (q *Query) ByGrantedShares(ids ...string) *Query {
	q.grantedShares = append(q.grantedShares, ids...)
	return q
}

// ByColumnNames appends column names the asset must contain
func (q *Query) ByColumnNames(names ...string) *Query {
	q.columnNames = append(q.columnNames, names...)
	return q
}

// ByApprovalStatus appends approval states
func (q *Query) ByApprovalStatus(statuses ...ApprovalStatus) *Query {
	for _, s := range statuses {
		q.approvals = append(q.approvals, string(s))
	}
	return q
}

// reservedParams are rendered by the query itself and cannot double as metadata keys
var reservedParams = map[string]struct{}{
	"ids": {}, "domains": {}, "categories": {}, "tags": {}, "only": {},
	"attribution": {}, "license": {}, "derived_from": {}, "for_user": {},
	"shared_to": {}, "column_names": {}, "approval_status": {},
	"search_context": {}, "q": {}, "provenance": {}, "visibility": {},
	"scroll_id": {}, "public": {}, "published": {}, "explicitly_hidden": {},
	"derived": {}, "order": {}, "boostOfficial": {}, "limit": {}, "offset": {},
}

// ByMetadata sets one domain specific metadata filter; the last value per key wins
// blank keys and the names of the query's own parameters are rejected
func (q *Query) ByMetadata(key, value string) *Query {
	if strings.TrimSpace(key) == "" {
		q.fail(perr.MissingArgf("metadata", "metadata key is required"))
		return q
	}
	if _, ok := reservedParams[key]; ok {
		q.fail(perr.WithField(perr.InvalidArgf("metadata key %q is a reserved parameter", key), "metadata"))
		return q
	}
	q.metadata[key] = value
	return q
}

// Flags

// OnlyPublicAssets keeps public assets
func (q *Query) OnlyPublicAssets() *Query {
	q.public = Yes
	return q
}

// OnlyPrivateAssets keeps private assets
func (q *Query) OnlyPrivateAssets() *Query {
	q.public = No
	return q
}

// OnlyPublishedAssets keeps published assets
func (q *Query) OnlyPublishedAssets() *Query {
	q.published = Yes
	return q
}

// OnlyUnpublishedAssets keeps unpublished (working copy) assets
func (q *Query) OnlyUnpublishedAssets() *Query {
	q.published = No
	return q
}

// OnlyHiddenAssets keeps assets explicitly hidden from the catalog
func (q *Query) OnlyHiddenAssets() *Query {
	q.hidden = Yes
	return q
}

// OnlyUnhiddenAssets keeps assets not explicitly hidden
func (q *Query) OnlyUnhiddenAssets() *Query {
	q.hidden = No
	return q
}

// OnlyDerivedAssets keeps derived views
func (q *Query) OnlyDerivedAssets() *Query {
	q.derived = Yes
	return q
}

// OnlyBaseAssets keeps base (non derived) assets
func (q *Query) OnlyBaseAssets() *Query {
	q.derived = No
	return q
}

// Sorting

// SortAscendingBy appends an ascending sort field
func (q *Query) SortAscendingBy(field string) *Query {
	q.sortAsc = append(q.sortAsc, field)
	return q
}

// SortDescendingBy appends a descending sort field
func (q *Query) SortDescendingBy(field string) *Query {
	q.sortDesc = append(q.sortDesc, field)
	return q
}

// Accessors; containers are returned as copies

func (q *Query) Version() Version            { return q.version }
func (q *Query) Location() Location          { return q.location }
func (q *Query) SearchContext() string       { return q.searchContext }
func (q *Query) QueryTerm() string           { return q.term }
func (q *Query) Provenance() Provenance      { return q.provenance }
func (q *Query) Visibility() Visibility      { return q.visibility }
func (q *Query) LimitValue() int             { return q.limit }
func (q *Query) OffsetValue() int            { return q.offset }
func (q *Query) ScrollID() string            { return q.scrollID }
func (q *Query) BoostValue() float64         { return q.boost }
func (q *Query) AssetIDs() []string          { return slices.Clone(q.assetIDs) }
func (q *Query) Domains() []string           { return slices.Clone(q.domains) }
func (q *Query) Categories() []string        { return slices.Clone(q.categories) }
func (q *Query) Tags() []string              { return slices.Clone(q.tags) }
func (q *Query) Types() []string             { return slices.Clone(q.types) }
func (q *Query) Attributions() []string      { return slices.Clone(q.attributions) }
func (q *Query) Licenses() []string          { return slices.Clone(q.licenses) }
func (q *Query) ParentIDs() []string         { return slices.Clone(q.parentIDs) }
func (q *Query) OwnerIDs() []string          { return slices.Clone(q.ownerIDs) }
func (q *Query) GrantedShares() []string     { return slices.Clone(q.grantedShares) }
func (q *Query) ColumnNames() []string       { return slices.Clone(q.columnNames) }
func (q *Query) ApprovalStatuses() []string  { return slices.Clone(q.approvals) }
func (q *Query) Metadata() map[string]string { return maps.Clone(q.metadata) }
func (q *Query) SortAscending() []string     { return slices.Clone(q.sortAsc) }
func (q *Query) SortDescending() []string    { return slices.Clone(q.sortDesc) }
func (q *Query) Public() Flag                { return q.public }
func (q *Query) Published() Flag             { return q.published }
func (q *Query) Hidden() Flag                { return q.hidden }
func (q *Query) Derived() Flag               { return q.derived }

// Rendering

// Values renders the discovery API parameters
func (q *Query) Values() url.Values {
	v := url.Values{}

	addAll(v, "ids", q.assetIDs)
	addAll(v, "domains", q.domains)
	addAll(v, "categories", q.categories)
	addAll(v, "tags", q.tags)
	addAll(v, "only", q.types)
	addAll(v, "attribution", q.attributions)
	addAll(v, "license", q.licenses)
	addAll(v, "derived_from", q.parentIDs)
	addAll(v, "for_user", q.ownerIDs)
	addAll(v, "shared_to", q.grantedShares)
	addAll(v, "column_names", q.columnNames)
	addAll(v, "approval_status", q.approvals)

	setIf(v, "search_context", q.searchContext)
	setIf(v, "q", q.term)
	setIf(v, "provenance", string(q.provenance))
	setIf(v, "visibility", string(q.visibility))
	setIf(v, "scroll_id", q.scrollID)

	setFlag(v, "public", q.public)
	setFlag(v, "published", q.published)
	setFlag(v, "explicitly_hidden", q.hidden)
	setFlag(v, "derived", q.derived)

	for _, f := range q.sortAsc {
		v.Add("order", f)
	}
	for _, f := range q.sortDesc {
		v.Add("order", f+" DESC")
	}

	if q.boost > 0 {
		v.Set("boostOfficial", strconv.FormatFloat(q.boost, 'f', -1, 64))
	}
	if q.limit > 0 {
		v.Set("limit", strconv.Itoa(q.limit))
	}
	if q.offset > 0 {
		v.Set("offset", strconv.Itoa(q.offset))
	}

	for _, k := range slices.Sorted(maps.Keys(q.metadata)) {
		v.Add(k, q.metadata[k])
	}
	return v
}

// URI returns the discovery search URI, or the first recorded error
func (q *Query) URI() (*url.URL, error) {
	if q.err != nil {
		return nil, q.err
	}
	version := q.version
	if version == "" {
		version = V1
	}
	return &url.URL{
		Scheme:   "https",
		Host:     q.location.Host(),
		Path:     "/api/catalog/" + string(version),
		RawQuery: q.Values().Encode(),
	}, nil
}

func addAll(v url.Values, key string, vals []string) {
	for _, s := range vals {
		v.Add(key, s)
	}
}

func setIf(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setFlag(v url.Values, key string, f Flag) {
	if s, ok := f.param(); ok {
		v.Set(key, s)
	}
}

func appendNFC(dst, vals []string) []string {
	for _, s := range vals {
		dst = append(dst, norm.NFC.String(s))
	}
	return dst
}
