// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrDebugDisabled is reported when a debug-only endpoint is requested while
// the site's DEBUG setting is off. It maps to 404 so the endpoint stays
// invisible in production.
var ErrDebugDisabled = errors.New("debug endpoints are disabled")
