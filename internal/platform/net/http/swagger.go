package http

import (
	"encoding/json"
	stdhttp "net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the swagger UI is served
const DocsPath = "/api/docs"

// SwaggerOptions describe the OpenAPI document behind the UI
type SwaggerOptions struct {
	Enabled bool
	// Doc returns the raw OpenAPI JSON document
	Doc func() []byte
	// BaseURL is injected as the single server entry when the document has none
	BaseURL string
}

// MountSwagger serves the UI under DocsPath and the patched document at DocsPath/doc.json
func MountSwagger(r Router, o SwaggerOptions) {
	if !o.Enabled || o.Doc == nil {
		return
	}
	r.Get(DocsPath, func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		stdhttp.Redirect(w, req, DocsPath+"/", stdhttp.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDoc(o))
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.URL(DocsPath+"/doc.json"),
		httpSwagger.DocExpansion("list"),
	))
}

func serveDoc(o SwaggerOptions) Handler {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		var spec map[string]any
		if err := json.Unmarshal(o.Doc(), &spec); err != nil {
			stdhttp.Error(w, "spec parse error", stdhttp.StatusInternalServerError)
			return
		}
		PatchSpec(spec, o.BaseURL)

		w.Header().Set("Cache-Control", "no-store")
		JSON(w, stdhttp.StatusOK, spec)
	}
}

// PatchSpec pins the document to OAS 3.0.3, adds a server entry and the shared
// error envelope, and gives every operation default 400 and 500 responses
func PatchSpec(spec map[string]any, baseURL string) {
	// the UI cannot render 3.1 yet
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	delete(spec, "swagger")
	if _, ok := spec["servers"]; !ok && baseURL != "" {
		spec["servers"] = []any{map[string]any{"url": baseURL}}
	}

	comps := child(spec, "components")
	schemas := child(comps, "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = map[string]any{
			"type":        "object",
			"description": "Standard error envelope",
			"properties": map[string]any{
				"status_code": map[string]any{"type": "integer", "format": "int32"},
				"status":      map[string]any{"type": "string"},
				"code":        map[string]any{"type": "integer", "format": "int32"},
				"error":       map[string]any{"type": "string"},
				"field":       map[string]any{"type": "string"},
				"request_id":  map[string]any{"type": "string"},
			},
			"required": []any{"status_code", "status"},
		}
	}

	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps := child(op, "responses")
			if _, ok := resps["400"]; !ok {
				resps["400"] = errorResponse("Bad Request", 400, "id \"nope\" is not a valid 4x4 resource identifier")
			}
			if _, ok := resps["500"]; !ok {
				resps["500"] = errorResponse("Internal Server Error", 500, "panic recovered")
			}
		}
	}
}

func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

func errorResponse(desc string, status int, msg string) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      desc,
					"error":       msg,
					"request_id":  "579f33bf50b1/abc-000001",
				},
			},
		},
	}
}
