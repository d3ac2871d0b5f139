// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package restviews is the data-grid component. It ships its own settings
// defaults, injected into the host site under the component name
// "restviews", and two template tags: Head, which loads the client scripts,
// and Grid, which emits the markup and configuration of one REST-backed
// grid.
//
// Grid options are layered from three sources, later ones winning:
//
//  1. built-in option defaults;
//  2. the live RESTVIEWS_GRID setting;
//  3. the options passed to [Tags.Grid].
//
// Only known option keys are honoured, unknown keys are ignored.
package restviews
