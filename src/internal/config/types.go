package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/maksimkurb/internet-reloader/src/internal/utils"
)

const (
	ProbeMethodHTTP = "http"
	ProbeMethodDNS  = "dns"

	PolicyTolerate = "tolerate"
	PolicyAbort    = "abort"
)

// Defaults applied to fields left out of the configuration file.
const (
	DefaultPollIntervalSeconds = 10
	DefaultProbeTimeoutMs      = 3000
	DefaultHTTPURL             = "http://www.google.com"
	DefaultDNSServer           = "1.1.1.1:53"
	DefaultDNSQuery            = "google.com."
	DefaultAPIListenAddr       = "127.0.0.1:8090"
)

type Config struct {
	// General holds the poll loop settings.
	General *GeneralConfig `toml:"general"`
	// Probe configures how connectivity is checked.
	Probe *ProbeConfig `toml:"probe"`
	// Reconnect configures the reconnect sequence.
	Reconnect *ReconnectConfig `toml:"reconnect"`
	// Hooks are commands run on status changes and reconnect attempts.
	Hooks *HooksConfig `toml:"hooks"`
	// API configures the local status API.
	API *APIConfig `toml:"api"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// PollIntervalSeconds is the time between polls (default: 10).
	PollIntervalSeconds int `toml:"poll_interval_seconds" json:"poll_interval_seconds" validate:"min=1,max=86400"`
}

type ProbeConfig struct {
	// Method selects the internet check: "http" or "dns" (default: "http").
	Method string `toml:"method" json:"method" validate:"oneof=http dns"`
	// TimeoutMs bounds each internet check (default: 3000).
	TimeoutMs int `toml:"timeout_ms" json:"timeout_ms" validate:"min=100,max=60000"`
	// HTTPURL is fetched by the "http" method. Any HTTP response counts as reachable.
	HTTPURL string `toml:"http_url" json:"http_url" validate:"http_url_or_empty"`
	// DNSServer is queried by the "dns" method, as host:port.
	DNSServer string `toml:"dns_server" json:"dns_server" validate:"hostport_or_empty"`
	// DNSQuery is the name resolved by the "dns" method.
	DNSQuery string `toml:"dns_query" json:"dns_query" validate:"dns_name_or_empty"`
}

type ReconnectConfig struct {
	// DisconnectPolicy is what a failed disconnect does: "tolerate" continues
	// with the connect, "abort" ends the attempt (default: "tolerate").
	DisconnectPolicy string `toml:"disconnect_policy" json:"disconnect_policy" validate:"oneof=tolerate abort"`
}

type HooksConfig struct {
	// OnStatusChange runs when the status changes. Supports {{status}} and {{previous}}.
	OnStatusChange []string `toml:"on_status_change" json:"on_status_change" validate:"argv"`
	// OnReconnect runs after every reconnect attempt. Supports {{result}} and {{status}}.
	OnReconnect []string `toml:"on_reconnect" json:"on_reconnect" validate:"argv"`
}

type APIConfig struct {
	// Enabled starts the status API with the service (default: false).
	Enabled bool `toml:"enabled" json:"enabled"`
	// ListenAddr is the API listen address (default: 127.0.0.1:8090).
	ListenAddr string `toml:"listen_addr" json:"listen_addr" validate:"hostport_or_empty"`
}

// DefaultConfig returns a configuration with every field at its default.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills missing sections and zero-valued fields.
func (c *Config) applyDefaults() {
	if c.General == nil {
		c.General = &GeneralConfig{}
	}
	if c.General.PollIntervalSeconds == 0 {
		c.General.PollIntervalSeconds = DefaultPollIntervalSeconds
	}

	if c.Probe == nil {
		c.Probe = &ProbeConfig{}
	}
	if c.Probe.Method == "" {
		c.Probe.Method = ProbeMethodHTTP
	}
	if c.Probe.TimeoutMs == 0 {
		c.Probe.TimeoutMs = DefaultProbeTimeoutMs
	}
	if c.Probe.HTTPURL == "" {
		c.Probe.HTTPURL = DefaultHTTPURL
	}
	if c.Probe.DNSServer == "" {
		c.Probe.DNSServer = DefaultDNSServer
	}
	if c.Probe.DNSQuery == "" {
		c.Probe.DNSQuery = DefaultDNSQuery
	}

	if c.Reconnect == nil {
		c.Reconnect = &ReconnectConfig{}
	}
	if c.Reconnect.DisconnectPolicy == "" {
		c.Reconnect.DisconnectPolicy = PolicyTolerate
	}

	if c.Hooks == nil {
		c.Hooks = &HooksConfig{}
	}

	if c.API == nil {
		c.API = &APIConfig{}
	}
	if c.API.ListenAddr == "" {
		c.API.ListenAddr = DefaultAPIListenAddr
	}
}

// PollInterval returns the poll period.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.General.PollIntervalSeconds) * time.Second
}

// ProbeTimeout returns the bound on one internet check.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Probe.TimeoutMs) * time.Millisecond
}

// ConfigDir returns the directory of the loaded configuration file, or the
// working directory when the configuration was not loaded from a file.
func (c *Config) ConfigDir() string {
	if c._absConfigFilePath == "" {
		return "."
	}
	return filepath.Dir(c._absConfigFilePath)
}

// ConfigFilePath returns the absolute path the configuration was loaded from.
func (c *Config) ConfigFilePath() string {
	return c._absConfigFilePath
}

// ResolveHook returns argv with a relative program path (one containing a
// path separator, like ./notify.sh) made absolute against the config directory.
// Bare program names are left for PATH lookup.
func (c *Config) ResolveHook(argv []string) []string {
	if len(argv) == 0 {
		return nil
	}
	resolved := make([]string, len(argv))
	copy(resolved, argv)
	if strings.ContainsAny(resolved[0], `/\`) {
		resolved[0] = utils.GetAbsolutePath(resolved[0], c.ConfigDir())
	}
	return resolved
}
