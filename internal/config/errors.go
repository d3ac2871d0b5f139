package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty version).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings (for
	// example, a missing HTTP address or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSettingsConfigs indicates an invalid component list
	// (for example, an empty name or one containing a path separator).
	ErrInvalidSettingsConfigs = errors.New("invalid settings configuration")
)
