// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns named html/template files into trusted HTML
// fragments. It also provides the two helpers templates depend on: a static
// asset resolver and a message translator backed by golang.org/x/text.
package render
