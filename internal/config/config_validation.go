// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	for _, component := range cfg.Settings.Components {
		if strings.TrimSpace(component) == "" || strings.ContainsAny(component, `/\`) {
			return fmt.Errorf("%w: component %q", ErrInvalidSettingsConfigs, component)
		}
	}

	return nil
}
