// Package config provides configuration loading and management for semlex.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete semlex configuration
type Config struct {
	Fetch   FetchConfig   `yaml:"fetch"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

// FetchConfig configures RDF retrieval over HTTP
type FetchConfig struct {
	// UserAgent is sent with every request
	UserAgent string `yaml:"user_agent"`
	// Timeout bounds a whole request (0 = transport default, no limit)
	Timeout time.Duration `yaml:"timeout"`
	// MaxBodyBytes caps the response body size (0 = unlimited)
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
	// Accept lists the RDF MIME types to negotiate for, in preference order
	Accept []string `yaml:"accept"`
	// BlockPrivateNetworks refuses loopback, private and link-local targets.
	// Nil means not set, so a later layer can turn the guard off again.
	BlockPrivateNetworks *bool `yaml:"block_private_networks,omitempty"`
}

// PrivateNetworksBlocked reports whether the private network guard is on.
func (f FetchConfig) PrivateNetworksBlocked() bool {
	return f.BlockPrivateNetworks != nil && *f.BlockPrivateNetworks
}

// MetricsConfig configures Prometheus instrumentation
type MetricsConfig struct {
	// Enabled turns on fetch metrics (nil = not set)
	Enabled *bool `yaml:"enabled,omitempty"`
	// Namespace prefixes every metric name
	Namespace string `yaml:"namespace"`
}

// IsEnabled reports whether fetch metrics are collected.
func (m MetricsConfig) IsEnabled() bool {
	return m.Enabled != nil && *m.Enabled
}

// Bool returns a pointer to v, for setting optional flags in code.
func Bool(v bool) *bool {
	return &v
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// DefaultAccept is the content negotiation order used when none is configured.
var DefaultAccept = []string{
	"text/turtle",
	"application/rdf+xml",
	"application/ld+json",
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	accept := make([]string, len(DefaultAccept))
	copy(accept, DefaultAccept)

	return &Config{
		Fetch: FetchConfig{
			UserAgent:    "semlex/0.1",
			Timeout:      0, // transport default
			MaxBodyBytes: 0, // unlimited
			Accept:       accept,

			BlockPrivateNetworks: Bool(false),
		},
		Metrics: MetricsConfig{
			Enabled:   Bool(false),
			Namespace: "semlex",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("fetch.timeout must not be negative")
	}
	if c.Fetch.MaxBodyBytes < 0 {
		return fmt.Errorf("fetch.max_body_bytes must not be negative")
	}
	if len(c.Fetch.Accept) == 0 {
		return fmt.Errorf("fetch.accept must list at least one content type")
	}
	for i, mime := range c.Fetch.Accept {
		if !strings.Contains(mime, "/") {
			return fmt.Errorf("fetch.accept[%d]: invalid content type %q", i, mime)
		}
	}
	if c.Metrics.IsEnabled() && c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics.namespace is required when metrics are enabled")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// ParseLevel converts a level name into a slog.Level. An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q", name)
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := decodeFile(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// readLayer loads a YAML file without defaults so that Merge only sees the
// values the file actually sets.
func readLayer(path string) (*Config, error) {
	config := &Config{}
	if err := decodeFile(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

func decodeFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values and for flags it sets explicitly, true or false)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Fetch
	if other.Fetch.UserAgent != "" {
		c.Fetch.UserAgent = other.Fetch.UserAgent
	}
	if other.Fetch.Timeout != 0 {
		c.Fetch.Timeout = other.Fetch.Timeout
	}
	if other.Fetch.MaxBodyBytes != 0 {
		c.Fetch.MaxBodyBytes = other.Fetch.MaxBodyBytes
	}
	if len(other.Fetch.Accept) > 0 {
		c.Fetch.Accept = other.Fetch.Accept
	}
	if other.Fetch.BlockPrivateNetworks != nil {
		c.Fetch.BlockPrivateNetworks = Bool(*other.Fetch.BlockPrivateNetworks)
	}

	// Metrics
	if other.Metrics.Enabled != nil {
		c.Metrics.Enabled = Bool(*other.Metrics.Enabled)
	}
	if other.Metrics.Namespace != "" {
		c.Metrics.Namespace = other.Metrics.Namespace
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
