package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func parsedFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without defaults fails
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_DefaultsOnly verifies that defaults alone form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultVersion, cfg.App.Version)
	assert.Equal(t, DefaultLanguage, cfg.App.Language)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultStaticURL, cfg.Server.StaticURL)
	assert.False(t, cfg.App.Debug)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Language: "de"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "de", cfg.App.Language)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

// TestBuild_LaterSourceWins verifies that non-zero values of later configs
// override earlier ones while zero values leave them untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:1111"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:2222"}},
		&StructuredConfig{},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
}

// TestBuild_InvalidComponent verifies that component names are validated.
func TestBuild_InvalidComponent(t *testing.T) {
	for _, name := range []string{"", "  ", "a/b", `a\b`} {
		t.Run(name, func(t *testing.T) {
			b := newConfigBuilder().withDefaults()
			b.configs = append(b.configs, &StructuredConfig{
				Settings: Settings{Components: []string{"blog", name}},
			})

			_, err := b.build()
			assert.ErrorIs(t, err, ErrInvalidSettingsConfigs)
		})
	}
}

// TestBuild_NegativeTimeout verifies server timeouts are validated.
func TestBuild_NegativeTimeout(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{ShutdownTimeout: -time.Second},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	setEnvVars(t, map[string]string{})
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	setEnvVars(t, map[string]string{})
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":         "env-version",
		"SETTINGS_COMPONENTS": "blog",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, []string{"blog"}, b.configs[0].Settings.Components)
}

// TestWithEnv_SetsError verifies that a malformed env var is reported and
// nothing is appended.
func TestWithEnv_SetsError(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_DEBUG": "sometimes"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(parsedFlagSet(t)))
}

// TestWithFlags_NilFlagSet verifies that a nil flag set is skipped.
func TestWithFlags_NilFlagSet(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(nil)
	assert.Empty(t, b.configs)
	assert.NoError(t, b.err)
}

// TestWithFlags_AppendsParsedValues verifies that parsed flags are appended.
func TestWithFlags_AppendsParsedValues(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(parsedFlagSet(t, "--debug", "-s", "site.yaml"))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.True(t, b.configs[0].App.Debug)
	assert.Equal(t, "site.yaml", b.configs[0].Settings.File)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Settings.OverrideFile = "local.yaml"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "local.yaml", b.configs[1].Settings.OverrideFile)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	last := StructuredJSONConfig{}
	last.App.Version = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "last-wins", b.configs[3].App.Version)
}

// TestWithJSON_PreservesEarlierError verifies that an error recorded before
// withJSON is kept.
func TestWithJSON_PreservesEarlierError(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "ok"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	assert.ErrorIs(t, b.err, assert.AnError)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Priority(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Language = "de"
	payload.Server.HTTPAddress = "localhost:7000"
	jsonPath := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"APP_VERSION":    "1.4.0",
		"SERVER_ADDRESS": "localhost:5000",
		"SETTINGS_FILE":  "env.yaml",
	})

	fs := parsedFlagSet(t,
		"-a", "localhost:6000",
		"-s", "flag.yaml",
		"-c", jsonPath,
		"--components", "blog,shop",
	)

	cfg, err := GetStructuredConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, "1.4.0", cfg.App.Version, "env over defaults")
	assert.Equal(t, "flag.yaml", cfg.Settings.File, "flags over env")
	assert.Equal(t, "localhost:7000", cfg.Server.HTTPAddress, "json over flags")
	assert.Equal(t, "de", cfg.App.Language)
	assert.Equal(t, []string{"blog", "shop"}, cfg.Settings.Components)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

func TestGetStructuredConfig_NilFlagSet(t *testing.T) {
	setEnvVars(t, map[string]string{})

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}
