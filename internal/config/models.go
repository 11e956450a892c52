package config

import (
	"fmt"
	"net/url"
	"strings"
)

// CurrentVersion is the config file schema version
const CurrentVersion = 1

// Default values
const (
	DefaultEndpoint         = "http://localhost:8000"
	DefaultDiscoverTimeout  = 5
	DefaultDiscoveryService = "_anagram._tcp"
)

// Config represents the entire user configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Endpoint is the anagram service base URL
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// Logging holds the log level and destination
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`

	// Discovery holds mDNS browsing preferences
	Discovery DiscoveryConfig `yaml:"discovery" mapstructure:"discovery"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty" mapstructure:"level"`   // "", debug, info, warn, error
	File   string `yaml:"file,omitempty" mapstructure:"file"`     // Log file path (required for the TUI)
	Format string `yaml:"format,omitempty" mapstructure:"format"` // "", text, json
}

// DiscoveryConfig controls mDNS service discovery.
type DiscoveryConfig struct {
	Timeout     int    `yaml:"timeout" mapstructure:"timeout"`           // Browse timeout in seconds
	ServiceType string `yaml:"service_type" mapstructure:"service_type"` // DNS-SD service type
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:  CurrentVersion,
		Endpoint: DefaultEndpoint,
		Discovery: DiscoveryConfig{
			Timeout:     DefaultDiscoverTimeout,
			ServiceType: DefaultDiscoveryService,
		},
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if err := ValidateEndpoint(c.Endpoint); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (use text or json)", c.Logging.Format)
	}
	if c.Discovery.Timeout < 0 {
		return fmt.Errorf("discovery timeout must not be negative, got %d", c.Discovery.Timeout)
	}
	return nil
}

// ValidateEndpoint checks that endpoint is an absolute http(s) URL.
func ValidateEndpoint(endpoint string) error {
	if strings.TrimSpace(endpoint) == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint must use http or https, got %q", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint has no host: %q", endpoint)
	}
	return nil
}
