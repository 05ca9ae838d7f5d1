// Package soda is a thin HTTP client for the open-data platform
//
// Each call makes exactly one request against a URI built by the core packages and
// returns the raw response bytes. Retries, auth, pagination and decoding belong to callers
package soda

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	perr "soda/internal/platform/errors"
	"soda/internal/platform/logger"
	pnet "soda/internal/platform/net"

	"github.com/google/uuid"
)

const (
	defaultTimeout = 30 * time.Second
	defaultUA      = "soda-go"
	defaultMaxBody = 16 << 20

	// HeaderRequestID carries the correlation id on every outbound request
	HeaderRequestID = "X-Request-ID"
)

// Options configures the Client
type Options struct {
	// Host is the data portal, with or without scheme; https is enforced when URIs are built
	Host      string
	UserAgent string
	Timeout   time.Duration

	// MaxBodyBytes caps how much of a 2xx body is read
	MaxBodyBytes int64

	// HTTPClient overrides the default client, Timeout is ignored when set
	HTTPClient *http.Client
}

// Result is one raw response
type Result struct {
	URI         string
	Status      int
	Body        []byte
	ContentType string
	ETag        string
	NotModified bool
	RequestID   string
	Latency     time.Duration
}

// Client issues single-attempt GET requests; safe for concurrent use
type Client struct {
	http  *http.Client
	opts  Options
	log   *logger.Logger
	now   func() time.Time
	newID func() string
}

// NewClient creates a new Client with defaults filled in
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = defaultMaxBody
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http:  hc,
		opts:  o,
		log:   logger.Named("soda"),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Host returns the configured data portal
func (c *Client) Host() string { return c.opts.Host }

// WithHost returns a copy of c that targets another data portal
func (c *Client) WithHost(host string) *Client {
	cp := *c
	cp.opts.Host = host
	return &cp
}

// Do issues a GET for u; etag is optional and adds If-None-Match
// the request id comes from ctx when present, otherwise a fresh uuid is used
func (c *Client) Do(ctx context.Context, u *url.URL, etag string) (Result, error) {
	if u == nil {
		return Result{}, perr.InvalidArgf("request uri is required")
	}
	reqID := pnet.RequestID(ctx)
	if reqID == "" {
		reqID = c.newID()
	}
	ctx = pnet.WithRequest(ctx, reqID, u.Host)
	log := logger.C(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Result{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "soda new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, reqID)
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, perr.Wrapf(ctx.Err(), perr.ErrorCodeUnavailable, "soda request to %s canceled", u.Host)
		}
		return Result{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "soda request to %s failed", u.Host)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("path", u.Path).Msg("soda close body failed")
		}
	}()

	log.Debug().
		Str("method", http.MethodGet).
		Str("path", u.Path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("soda http response")

	out := Result{
		URI:         u.String(),
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		ETag:        resp.Header.Get("ETag"),
		RequestID:   reqID,
		Latency:     lat,
	}

	switch {
	case resp.StatusCode == http.StatusNotModified:
		out.NotModified = true
		if out.ETag == "" {
			out.ETag = etag
		}
		return out, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		body, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBodyBytes+1))
		if err != nil {
			return Result{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "soda read body failed")
		}
		if int64(len(body)) > c.opts.MaxBodyBytes {
			return Result{}, perr.Newf(perr.ErrorCodeUnknown, "soda response from %s exceeds %d bytes", u.Host, c.opts.MaxBodyBytes)
		}
		out.Body = body
		return out, nil
	default:
		// a short tail of the body is enough for diagnostics
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Result{}, newStatusError(resp.StatusCode, string(tail), reqID, u)
	}
}
