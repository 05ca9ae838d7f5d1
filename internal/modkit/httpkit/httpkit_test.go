package httpkit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "soda/internal/platform/errors"
	phttp "soda/internal/platform/net/http"
	kit "soda/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

type echoIn struct {
	Name string `json:"name" validate:"required"`
}

func newRouter() (Router, http.Handler) {
	m := chi.NewRouter()
	return phttp.AdaptChi(m), m
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v body=%s", err, rr.Body.String())
	}
	return env
}

func TestSugar_GetPostAndPostJSON(t *testing.T) {
	r, mux := newRouter()
	Get(r, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	Post(r, "/fail", func(*http.Request) (any, error) { return nil, perr.NotFoundf("gone") })
	PostJSON(r, "/echo", func(_ *http.Request, in echoIn) (any, error) {
		return map[string]string{"hello": in.Name}, nil
	})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	kit.MustEqual(t, rr.Code, http.StatusOK, "ping status")
	kit.MustEqual(t, decode(t, rr).Data.(string), "pong", "ping data")

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/fail", nil))
	kit.MustEqual(t, rr.Code, http.StatusNotFound, "fail status")
	kit.MustEqual(t, decode(t, rr).Code, perr.ErrorCodeNotFound, "fail code")

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"ada"}`)))
	kit.MustEqual(t, rr.Code, http.StatusOK, "echo status")
	kit.MustContain(t, rr.Body.String(), `"hello":"ada"`)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{}`)))
	env := decode(t, rr)
	kit.MustEqual(t, env.Code, perr.ErrorCodeValidation, "validation code")
	kit.MustEqual(t, env.Field, "name", "validation field")
}

func TestCall_ResponsePassThrough(t *testing.T) {
	r, mux := newRouter()
	Get(r, "/teapot", func(*http.Request) (any, error) {
		return Response{Status: http.StatusTeapot, Body: "short"}, nil
	})
	Get(r, "/plain", func(*http.Request) (any, error) { return nil, errors.New("boom") })

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	kit.MustEqual(t, rr.Code, http.StatusTeapot, "teapot status")

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/plain", nil))
	kit.MustEqual(t, rr.Code, http.StatusInternalServerError, "plain error status")
}

func TestParam(t *testing.T) {
	r, mux := newRouter()
	Get(r, "/uris/{kind}", func(req *http.Request) (any, error) { return Param(req, "kind"), nil })

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uris/query", nil))
	kit.MustEqual(t, decode(t, rr).Data.(string), "query", "param")
}

func TestMountAPIV1_PrefixAndMiddleware(t *testing.T) {
	r, mux := newRouter()
	hits := 0
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			hits++
			next.ServeHTTP(w, req)
		})
	}
	MountAPIV1(r, []func(http.Handler) http.Handler{mw}, func(api Router) {
		Get(api, "/x", func(*http.Request) (any, error) { return 1, nil })
	})
	MountAPI(r, "/v2/", nil, func(api Router) {
		Get(api, "/y", func(*http.Request) (any, error) { return 2, nil })
	})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/x", nil))
	kit.MustEqual(t, rr.Code, http.StatusOK, "v1 status")
	kit.MustEqual(t, hits, 1, "middleware hits")

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v2/y", nil))
	kit.MustEqual(t, rr.Code, http.StatusOK, "v2 status")
	kit.MustEqual(t, hits, 1, "v2 scope has no middleware")
}

func TestCommonStack(t *testing.T) {
	mws := CommonStack(StackOptions{CORS: CORSOptions{AllowedOrigins: []string{"https://example.org"}}})
	if len(mws) < 5 {
		t.Fatalf("expected the full stack, got %d", len(mws))
	}
}
