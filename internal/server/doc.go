// Package server runs the HTTP transport of the restviews site.
//
// It owns the listener lifecycle: startup, stop signal handling and graceful
// shutdown bounded by the configured shutdown timeout.
package server
