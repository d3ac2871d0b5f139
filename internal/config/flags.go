package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flag names shared by [BindFlags] and parseFlags.
const (
	flagAddress         = "address"
	flagConfig          = "config"
	flagDebug           = "debug"
	flagLanguage        = "language"
	flagLogLevel        = "log-level"
	flagRequestTimeout  = "request-timeout"
	flagShutdownTimeout = "shutdown-timeout"
	flagStaticURL       = "static-url"
	flagStaticDir       = "static-dir"
	flagSettings        = "settings"
	flagOverride        = "settings-override"
	flagComponentsDir   = "components-dir"
	flagComponents      = "components"
)

// BindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-a/--address HTTP server address in format [host]:[port]
//	-c/--config json file path with configs
//	--debug enable debug mode
//	--language UI language tag (e.g. "en", "de")
//	--log-level minimum log level
//	--request-timeout request timeout (e.g., "30s", "1m")
//	--shutdown-timeout graceful shutdown timeout
//	--static-url URL prefix for static assets
//	--static-dir directory served under the static URL
//	-s/--settings site settings file (YAML or JSON)
//	--settings-override settings file whose values win over --settings
//	--components-dir directory with component defaults
//	--components comma separated components to inject
func BindFlags(fs *pflag.FlagSet) {
	fs.VarP(&NetAddress{}, flagAddress, "a", "Net address host:port")
	fs.StringP(flagConfig, "c", "", "JSON config file path")
	fs.Bool(flagDebug, false, "Enable debug mode")
	fs.String(flagLanguage, "", "UI language tag")
	fs.String(flagLogLevel, "", "Minimum log level")
	fs.Duration(flagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.Duration(flagShutdownTimeout, 0, "Graceful shutdown timeout")
	fs.String(flagStaticURL, "", "URL prefix for static assets")
	fs.String(flagStaticDir, "", "Directory served under the static URL")
	fs.StringP(flagSettings, "s", "", "Site settings file (YAML or JSON)")
	fs.String(flagOverride, "", "Settings file whose values win over --settings")
	fs.String(flagComponentsDir, "", "Directory with component defaults")
	fs.StringSlice(flagComponents, nil, "Components whose defaults are injected")
}

// parseFlags reads the values registered by [BindFlags] from an already
// parsed fs. Flags that were not registered are left zero.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	r := flagReader{fs: fs}

	cfg := &StructuredConfig{
		App: App{
			Debug:    r.getBool(flagDebug),
			Language: r.getString(flagLanguage),
			LogLevel: r.getString(flagLogLevel),
		},
		Server: Server{
			HTTPAddress:     r.getValue(flagAddress),
			RequestTimeout:  r.getDuration(flagRequestTimeout),
			ShutdownTimeout: r.getDuration(flagShutdownTimeout),
			StaticURL:       r.getString(flagStaticURL),
			StaticDir:       r.getString(flagStaticDir),
		},
		Settings: Settings{
			File:          r.getString(flagSettings),
			OverrideFile:  r.getString(flagOverride),
			ComponentsDir: r.getString(flagComponentsDir),
			Components:    r.getStringSlice(flagComponents),
		},
		JSONFilePath: r.getString(flagConfig),
	}

	if r.err != nil {
		return nil, fmt.Errorf("error reading flags: %w", r.err)
	}

	return cfg, nil
}

// flagReader collects the first lookup error so parseFlags stays linear.
type flagReader struct {
	fs  *pflag.FlagSet
	err error
}

func (r *flagReader) registered(name string) bool {
	return r.fs.Lookup(name) != nil
}

func (r *flagReader) getString(name string) string {
	if !r.registered(name) {
		return ""
	}
	v, err := r.fs.GetString(name)
	r.err = errors.Join(r.err, err)
	return v
}

func (r *flagReader) getBool(name string) bool {
	if !r.registered(name) {
		return false
	}
	v, err := r.fs.GetBool(name)
	r.err = errors.Join(r.err, err)
	return v
}

func (r *flagReader) getDuration(name string) time.Duration {
	if !r.registered(name) {
		return 0
	}
	v, err := r.fs.GetDuration(name)
	r.err = errors.Join(r.err, err)
	return v
}

func (r *flagReader) getStringSlice(name string) []string {
	if !r.registered(name) {
		return nil
	}
	v, err := r.fs.GetStringSlice(name)
	r.err = errors.Join(r.err, err)
	return v
}

func (r *flagReader) getValue(name string) string {
	f := r.fs.Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// empty or "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
