// Package http implements the HTTP transport layer of the restviews demo
// site.
//
// It exposes route wiring, page and API handlers, and the middleware chain:
// panic recovery, request tracing, access logging and response compression.
// Handlers delegate to the service layer and render pages through the
// templates returned by [Pages].
package http
