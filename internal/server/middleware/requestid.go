// Package middleware provides HTTP middleware shared by the API handlers.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// requestIDKey is the context key for storing the request identifier.
const requestIDKey ContextKey = "requestID"

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID injects an identifier for traceability if the caller did not provide one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, rid)
		ctx := context.WithValue(r.Context(), requestIDKey, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request identifier if available.
func GetRequestID(r *http.Request) string {
	if rid, ok := r.Context().Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}
