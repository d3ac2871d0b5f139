// Package config provides configuration loading, merging, and validation
// facilities for the restviews server and CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetStructuredConfig]. This package configures the
// process (addresses, files, log level); the site settings that templates
// read live in package settings.
package config
