// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// restviews server. It is populated by merging built-in defaults,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version, debug mode
	// and UI language.
	App App `envPrefix:"APP_"`

	// Server holds network, timeout and static asset settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Settings locates the site settings documents and the components whose
	// defaults are injected at startup.
	Settings Settings `envPrefix:"SETTINGS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Debug switches the site into debug mode: debug builds of client
	// libraries and the /api/settings/ endpoint. Seeds the DEBUG setting
	// when the settings file does not define it.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// Language is the BCP 47 tag used to translate grid labels (e.g. "en",
	// "de").
	// Env: APP_LANGUAGE
	Language string `env:"LANGUAGE"`

	// LogLevel is the minimum zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// StaticURL is the URL prefix static assets are resolved against
	// (e.g. "/static/" or "https://cdn.example.com/").
	// Env: SERVER_STATIC_URL
	StaticURL string `env:"STATIC_URL"`

	// StaticDir is the local directory served under StaticURL. Empty
	// disables static file serving.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// Settings locates the site settings.
type Settings struct {
	// File is the base YAML or JSON settings document.
	// Env: SETTINGS_FILE
	File string `env:"FILE"`

	// OverrideFile is an optional document whose values win over File.
	// Env: SETTINGS_OVERRIDE_FILE
	OverrideFile string `env:"OVERRIDE_FILE"`

	// ComponentsDir holds <component>/settings.{yaml,yml,json} defaults for
	// components that are not built in.
	// Env: SETTINGS_COMPONENTS_DIR
	ComponentsDir string `env:"COMPONENTS_DIR"`

	// Components lists the components whose defaults are injected, in
	// order. The built-in restviews component is always injected first.
	// Env: SETTINGS_COMPONENTS (comma separated)
	Components []string `env:"COMPONENTS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources (last source wins for non-zero
// fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags from fs, which must already be parsed; nil skips
//     this source
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
