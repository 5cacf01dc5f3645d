// Package middleware holds the HTTP middleware the dashboard router mounts in
// front of every page: request IDs for log correlation and per-client rate
// limiting.
package middleware

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// A client-supplied X-Request-ID is reused only when it is plainly safe to
// log: short, and free of whitespace or markup.
var validRequestID = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,128}$`)

// RequestID returns an HTTP middleware that assigns a unique request ID to
// each request. A valid incoming X-Request-ID header is reused; anything else
// is replaced with a fresh UUID. The ID is set on the response header and
// stored in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if !validRequestID.MatchString(id) {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is present.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
