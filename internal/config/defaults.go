package config

import "time"

// Built-in defaults, applied before any other source.
const (
	DefaultVersion         = "dev"
	DefaultLanguage        = "en"
	DefaultLogLevel        = "info"
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultStaticURL       = "/static/"
)

// defaultConfig returns the configuration every other source is merged on.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			Language: DefaultLanguage,
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			StaticURL:       DefaultStaticURL,
		},
	}
}
