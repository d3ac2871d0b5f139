// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// restviews server handlers and commands.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgNotFound is returned for unknown grids and for debug endpoints
	// while DEBUG is off.
	MsgNotFound = "not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve, including grids whose
	// definition in RESTVIEWS_GRIDS is broken.
	MsgInternalServerError = "internal server error"
)
