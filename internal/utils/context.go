// Package utils provides general-purpose helpers used across the restviews
// server: type-safe context keys, request trace identifiers, and HTTP
// response writers for JSON and rendered HTML.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the request trace identifier is
// stored in the context.
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, "0190...")
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext retrieves the request trace identifier.
//
// Returns the trace ID and an ok flag:
//   - ok == true when a non-empty string value is found
//   - ok == false when the value is missing, empty or has an unexpected type
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
