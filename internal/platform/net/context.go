// Package net holds transport-neutral request helpers shared by the server and the client
package net

import (
	"context"

	"soda/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyHost ctxKey = "host"

// WithRequest annotates ctx with the request id and the portal host the request targets
// The same values are attached to the request-scoped logger
func WithRequest(ctx context.Context, reqID, host string) context.Context {
	if reqID != "" {
		// stored under chi's key so chimw.GetReqID sees ids minted outside chi
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if host != "" {
		ctx = context.WithValue(ctx, keyHost, host)
	}
	return logger.WithRequest(ctx, reqID, host)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// Host returns the portal host on the context if present
func Host(ctx context.Context) string {
	if v, ok := ctx.Value(keyHost).(string); ok {
		return v
	}
	return ""
}
