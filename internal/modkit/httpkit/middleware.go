package httpkit

import (
	"net/http"

	"soda/internal/platform/net/middleware"
)

// StackOptions re-exports the middleware stack tuning
type StackOptions = middleware.StackOptions

// CORSOptions re-exports the CORS settings
type CORSOptions = middleware.CORSOptions

// CommonStack returns the baseline middleware slice for an API version scope
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	return middleware.Stack(o)
}
