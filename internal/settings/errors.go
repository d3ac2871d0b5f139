// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "errors"

var (
	// ErrCyclicConfiguration is returned when a tree contains itself at any
	// depth. Merging or copying such a tree would never terminate.
	ErrCyclicConfiguration = errors.New("cyclic configuration tree")

	// ErrComponentDefaults wraps every failure to load a component's defaults
	// other than the component simply having none.
	ErrComponentDefaults = errors.New("error loading component defaults")

	// ErrInvalidComponentName is returned by [FileResolver] for names that
	// could escape the components directory.
	ErrInvalidComponentName = errors.New("invalid component name")

	// ErrUnsupportedSettingsFile is returned by [LoadFile] for files with an
	// extension other than .yaml, .yml or .json.
	ErrUnsupportedSettingsFile = errors.New("unsupported settings file format")
)
