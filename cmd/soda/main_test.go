package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"soda/internal/adapters/soda"
	perr "soda/internal/platform/errors"
	kit "soda/internal/platform/testkit"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestURI(t *testing.T) {
	t.Setenv("SODA_HOST", "data.example.org")

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"uri", "metadata", "--id", "abcd-1234"}, "https://data.example.org/views/abcd-1234"},
		{[]string{"uri", "metadata"}, "https://data.example.org/views"},
		{[]string{"uri", "metadata-list"}, "https://data.example.org/views?page=1"},
		{[]string{"uri", "metadata-list", "--page", "4"}, "https://data.example.org/views?page=4"},
		{[]string{"uri", "resource", "--id", "abcd-1234", "--row-id", "7"}, "https://data.example.org/resource/abcd-1234/7"},
		{[]string{"uri", "query", "--id", "abcd-1234", "--where", "a > 0", "--limit", "5"}, "https://data.example.org/resource/abcd-1234?$select=*&$where=a%20%3E%200&$limit=5"},
		{[]string{"uri", "query", "--id", "abcd-1234"}, "https://data.example.org/resource/abcd-1234?$select=*"},
		{[]string{"uri", "job", "--revision", "3"}, "https://data.example.org/3/"},
		{[]string{"--host", "http://other.example.org", "uri", "resource-page", "--id", "abcd-1234"}, "https://other.example.org/-/-/abcd-1234"},
	}
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			out, _, err := run(t, c.args...)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			kit.MustEqual(t, strings.TrimSpace(out), c.want, "uri")
		})
	}
}

func TestURI_Errors(t *testing.T) {
	t.Setenv("SODA_HOST", "data.example.org")

	_, _, err := run(t, "uri", "metadata", "--id", "nope")
	kit.MustEqual(t, perr.CodeOf(err), perr.ErrorCodeInvalidIdentifier, "bad id")

	_, _, err = run(t, "uri", "metadata-list", "--page", "0")
	kit.MustEqual(t, perr.CodeOf(err), perr.ErrorCodeInvalidRange, "page zero")

	_, _, err = run(t, "uri", "query", "--id", "abcd-1234", "--limit", "-1")
	kit.MustEqual(t, perr.FieldOf(err), "limit", "negative limit")

	_, _, err = run(t, "uri", "job", "--revision", "-1")
	kit.MustEqual(t, perr.CodeOf(err), perr.ErrorCodeInvalidRange, "negative revision")

	_, _, err = run(t, "uri", "job", "--revision", "3?x=1")
	if err == nil {
		t.Fatal("expected a flag error for a non-numeric revision")
	}

	_, _, err = run(t, "uri", "nonsense")
	if err == nil {
		t.Fatal("expected an error for an unknown kind")
	}

	t.Setenv("SODA_HOST", "")
	_, _, err = run(t, "uri", "metadata")
	kit.MustEqual(t, perr.CodeOf(err), perr.ErrorCodeMissingArgument, "missing host")
}

func TestSoQL(t *testing.T) {
	out, _, err := run(t, "soql", "--limit", "5000", "--select", "a,b", "--order", "a", "--direction", "desc", "--where", "b = 1")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	kit.MustEqual(t, strings.TrimSpace(out), "$select=a,b&$where=b = 1&$order=a DESC&$limit=1000", "query")

	_, _, err = run(t, "soql", "--direction", "sideways")
	kit.MustEqual(t, perr.FieldOf(err), "direction", "bad direction")
}

func TestCatalog(t *testing.T) {
	out, _, err := run(t, "catalog", "--q", "parks", "--public=false", "--only", "dataset", "--limit", "20")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	kit.MustEqual(t, strings.TrimSpace(out), "https://api.us.socrata.com/api/catalog/v1?limit=20&only=dataset&public=false&q=parks", "uri")

	t.Setenv("SODA_LOCATION", "eu")
	out, _, err = run(t, "catalog", "--metadata", "owner=parks")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	kit.MustEqual(t, strings.TrimSpace(out), "https://api.eu.socrata.com/api/catalog/v1?owner=parks", "eu uri")

	_, _, err = run(t, "catalog", "--ids", "bad")
	kit.MustEqual(t, perr.CodeOf(err), perr.ErrorCodeInvalidIdentifier, "bad asset id")

	_, _, err = run(t, "catalog", "--only", "spreadsheet")
	kit.MustEqual(t, perr.CodeOf(err), perr.ErrorCodeValidation, "bad asset type")
	kit.MustEqual(t, perr.FieldOf(err), "only[0]", "bad asset type field")

	_, _, err = run(t, "catalog", "--derived-from", "abcd-1234,bad")
	kit.MustEqual(t, perr.CodeOf(err), perr.ErrorCodeValidation, "bad parent id")
	kit.MustContain(t, err.Error(), "4x4")

	_, _, err = run(t, "catalog", "--metadata", "limit=5")
	kit.MustEqual(t, perr.CodeOf(err), perr.ErrorCodeInvalidArgument, "reserved metadata key")
}

func TestFetch(t *testing.T) {
	var paths []string
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.RequestURI())
		switch {
		case r.Header.Get("If-None-Match") == `"v1"`:
			w.WriteHeader(http.StatusNotModified)
		case strings.HasPrefix(r.URL.Path, "/views/gone-0000"):
			w.WriteHeader(http.StatusNotFound)
		default:
			_, _ = io.WriteString(w, `[{"a":"1"}]`)
		}
	}))
	defer srv.Close()

	t.Setenv("SODA_HOST", srv.URL)
	kit.SerialSwap(t, &newClient, func(s soda.Settings) *soda.Client {
		o := s.Options
		o.HTTPClient = srv.Client()
		return soda.NewClient(o)
	})

	out, _, err := run(t, "fetch", "query", "abcd-1234", "--limit", "1")
	if err != nil {
		t.Fatalf("fetch query: %v", err)
	}
	kit.MustEqual(t, out, "[{\"a\":\"1\"}]\n", "query body")
	kit.MustEqual(t, paths[0], "/resource/abcd-1234?$select=*&$limit=1", "query path")

	_, errOut, err := run(t, "fetch", "metadata", "abcd-1234", "--etag", `"v1"`)
	if err != nil {
		t.Fatalf("fetch metadata: %v", err)
	}
	kit.MustContain(t, errOut, "not modified")

	_, _, err = run(t, "fetch", "metadata", "gone-0000")
	kit.MustEqual(t, perr.CodeOf(err), perr.ErrorCodeNotFound, "missing view")

	_, _, err = run(t, "fetch", "query", "nope")
	kit.MustEqual(t, perr.CodeOf(err), perr.ErrorCodeInvalidIdentifier, "bad id never sent")

	_, _, err = run(t, "fetch", "catalog", "--for-user", "bad")
	kit.MustEqual(t, perr.CodeOf(err), perr.ErrorCodeValidation, "bad owner never sent")
	kit.MustEqual(t, len(paths), 3, "requests sent")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	kit.MustContain(t, out, "soda ")
}
