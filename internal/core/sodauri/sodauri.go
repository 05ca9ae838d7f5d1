// Package sodauri builds the canonical platform endpoint URIs
//
// Every function validates its arguments before any string is assembled, then
// fills one fixed template per endpoint kind. Hosts are normalized to https
package sodauri

import (
	"net/url"
	"strconv"
	"strings"

	"soda/internal/core/fourbyfour"
	"soda/internal/core/soql"
	perr "soda/internal/platform/errors"

	"golang.org/x/text/unicode/norm"
)

const (
	schemeHTTP  = "http://"
	schemeHTTPS = "https://"

	// DocsHost serves the generated API documentation pages
	DocsHost = "http://dev.socrata.com/foundry/#/"
)

// EnforceHTTPS strips a leading http:// and prepends https:// unless already present
// Both checks are case-insensitive; applying it twice equals applying it once
func EnforceHTTPS(host string) string {
	if hasPrefixFold(host, schemeHTTP) {
		host = host[len(schemeHTTP):]
	}
	if !hasPrefixFold(host, schemeHTTPS) {
		host = schemeHTTPS + host
	}
	return host
}

// ForMetadata returns {host}/views or {host}/views/{id} when id is not empty
func ForMetadata(host, id string) (*url.URL, error) {
	base, err := baseFor(host)
	if err != nil {
		return nil, err
	}
	if id != "" {
		if err := fourbyfour.Validate("id", id); err != nil {
			return nil, err
		}
	}
	return parse(metadataBase(base, id))
}

// ForMetadataList returns {host}/views?page={page}; pages start at 1
func ForMetadataList(host string, page int) (*url.URL, error) {
	base, err := baseFor(host)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, perr.InvalidRangef("page", "page must be >= 1, got %d", page)
	}
	return parse(metadataBase(base, "") + "?page=" + strconv.Itoa(page))
}

// ForResourceAPI returns {host}/resource/{id} or {host}/resource/{id}/{rowID} when rowID is not empty
func ForResourceAPI(host, id, rowID string) (*url.URL, error) {
	base, err := baseWithID(host, id)
	if err != nil {
		return nil, err
	}
	raw := base + "/resource/" + id
	if rowID != "" {
		raw += "/" + url.PathEscape(rowID)
	}
	return parse(raw)
}

// ForResourcePage returns the dataset landing page {host}/-/-/{id}
func ForResourcePage(host, id string) (*url.URL, error) {
	base, err := baseWithID(host, id)
	if err != nil {
		return nil, err
	}
	return parse(base + "/-/-/" + id)
}

// ForResourceAboutPage returns {host}/-/-/{id}/about
func ForResourceAboutPage(host, id string) (*url.URL, error) {
	base, err := baseWithID(host, id)
	if err != nil {
		return nil, err
	}
	return parse(base + "/-/-/" + id + "/about")
}

// ForResourceAPIDocPage returns the developer documentation page for a resource
func ForResourceAPIDocPage(host, id string) (*url.URL, error) {
	base, err := baseWithID(host, id)
	if err != nil {
		return nil, err
	}
	u, err := parse(base)
	if err != nil {
		return nil, err
	}
	return parse(DocsHost + u.Host + "/" + id)
}

// ForQuery returns {host}/resource/{id}?{q} with the whole URI percent-escaped
// q must be non-nil and carry no recorded error
func ForQuery(host, id string, q *soql.Builder) (*url.URL, error) {
	base, err := baseWithID(host, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, perr.InvalidQueryf("query", "a row query is required")
	}
	if err := q.Err(); err != nil {
		return nil, err
	}
	return parse(EscapeURI(base + "/resource/" + id + "?" + q.String()))
}

// ForCategoryPage returns {host}/categories/{category}; the name is NFC normalized and path escaped
func ForCategoryPage(host, category string) (*url.URL, error) {
	base, err := baseFor(host)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(category) == "" {
		return nil, perr.MissingArgf("category", "category is required")
	}
	return parse(base + "/categories/" + escapeSegment(norm.NFC.String(category)))
}

// ForRevision returns the publishing revision endpoint for a resource
func ForRevision(host, id string) (*url.URL, error) {
	base, err := baseWithID(host, id)
	if err != nil {
		return nil, err
	}
	return parse(base + "/api/publishing/v1/revision/" + id)
}

// ForUpload returns {host}{endpointPath} for an upload link handed out by the publishing API
func ForUpload(host, endpointPath string) (*url.URL, error) {
	return forEndpoint(host, endpointPath)
}

// ForSource returns {host}{endpointPath} for a revision source link
func ForSource(host, endpointPath string) (*url.URL, error) {
	return forEndpoint(host, endpointPath)
}

// ForApply returns {host}{endpointPath} for a revision apply link
func ForApply(host, endpointPath string) (*url.URL, error) {
	return forEndpoint(host, endpointPath)
}

// ForJob returns {host}/{revisionNumber}/; revision numbers start at 0
func ForJob(host string, revisionNumber int64) (*url.URL, error) {
	base, err := baseFor(host)
	if err != nil {
		return nil, err
	}
	if revisionNumber < 0 {
		return nil, perr.InvalidRangef("revision", "revision must be >= 0, got %d", revisionNumber)
	}
	return parse(base + "/" + strconv.FormatInt(revisionNumber, 10) + "/")
}

// publishing links arrive as JSON strings, so quotes are dropped
func forEndpoint(host, endpointPath string) (*url.URL, error) {
	base, err := baseFor(host)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(endpointPath) == "" {
		return nil, perr.MissingArgf("endpoint_path", "endpoint path is required")
	}
	return parse(base + strings.ReplaceAll(endpointPath, `"`, ""))
}

func metadataBase(base, id string) string {
	if id == "" {
		return base + "/views"
	}
	return base + "/views/" + id
}

// escapeSegment escapes every reserved byte in a path segment, spaces as %20
func escapeSegment(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// baseFor validates host and returns its https form without trailing slashes
// userinfo, a query or a fragment would move the templated path out of the path
func baseFor(host string) (string, error) {
	if strings.TrimSpace(host) == "" {
		return "", perr.MissingArgf("host", "host is required")
	}
	base := strings.TrimRight(EnforceHTTPS(strings.TrimSpace(host)), "/")
	u, err := url.Parse(base)
	if err != nil {
		return "", perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "invalid host %q", host), "host")
	}
	switch {
	case u.Host == "":
		return "", perr.WithField(perr.InvalidArgf("host %q has no hostname", host), "host")
	case u.User != nil:
		return "", perr.WithField(perr.InvalidArgf("host %q must not carry credentials", host), "host")
	case u.RawQuery != "" || u.ForceQuery:
		return "", perr.WithField(perr.InvalidArgf("host %q must not carry a query", host), "host")
	case u.Fragment != "" || strings.Contains(base, "#"):
		return "", perr.WithField(perr.InvalidArgf("host %q must not carry a fragment", host), "host")
	}
	return base, nil
}

func baseWithID(host, id string) (string, error) {
	base, err := baseFor(host)
	if err != nil {
		return "", err
	}
	if err := fourbyfour.Validate("id", id); err != nil {
		return "", err
	}
	return base, nil
}

func parse(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "invalid uri %q", raw), "host")
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, perr.WithField(perr.InvalidArgf("uri %q is not absolute", raw), "host")
	}
	return u, nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
