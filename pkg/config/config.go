// Package config loads server configuration from defaults, an optional YAML
// file, and SURF_-prefixed environment variables, in that order.
package config

import (
	"fmt"
	"os"

	"github.com/mstoykov/envconfig"
	"gopkg.in/yaml.v3"
)

// Defaults applied before the file and environment are consulted.
const (
	DefaultTimeoutMs           = 5000.0
	DefaultNavigationTimeoutMs = 30000.0
	DefaultWaitTimeoutMs       = 30000.0
	DefaultViewportWidth       = 1280
	DefaultViewportHeight      = 720
	DefaultMaxTabs             = 10
)

// Config holds all server settings.
type Config struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool `yaml:"headless" envconfig:"SURF_HEADLESS"`

	// InstallBrowsers runs the Playwright driver/browser install step before
	// launch. Disable when the environment pre-provisions browsers.
	InstallBrowsers bool `yaml:"install_browsers" envconfig:"SURF_INSTALL_BROWSERS"`

	// ViewportWidth and ViewportHeight set the context viewport.
	ViewportWidth  int `yaml:"viewport_width" envconfig:"SURF_VIEWPORT_WIDTH"`
	ViewportHeight int `yaml:"viewport_height" envconfig:"SURF_VIEWPORT_HEIGHT"`

	// DefaultTimeoutMs is the fallback timeout for element operations when a
	// tool call does not pass one, in milliseconds.
	DefaultTimeoutMs float64 `yaml:"default_timeout_ms" envconfig:"SURF_DEFAULT_TIMEOUT_MS"`

	// NavigationTimeoutMs bounds page loads, in milliseconds.
	NavigationTimeoutMs float64 `yaml:"navigation_timeout_ms" envconfig:"SURF_NAVIGATION_TIMEOUT_MS"`

	// MaxTabs caps the number of simultaneously open tabs.
	MaxTabs int `yaml:"max_tabs" envconfig:"SURF_MAX_TABS"`

	// AllowedHosts restricts navigation to hosts matching these glob
	// patterns (e.g. "*.example.com"). Empty means unrestricted.
	AllowedHosts []string `yaml:"allowed_hosts" envconfig:"SURF_ALLOWED_HOSTS"`

	// LogLevel is a logrus level string (debug, info, warn, error).
	LogLevel string `yaml:"log_level" envconfig:"SURF_LOG_LEVEL"`

	// LogFormat selects the stderr log encoder: "text" or "json".
	LogFormat string `yaml:"log_format" envconfig:"SURF_LOG_FORMAT"`
}

// New returns a Config populated with defaults.
func New() Config {
	return Config{
		Headless:            true,
		InstallBrowsers:     true,
		ViewportWidth:       DefaultViewportWidth,
		ViewportHeight:      DefaultViewportHeight,
		DefaultTimeoutMs:    DefaultTimeoutMs,
		NavigationTimeoutMs: DefaultNavigationTimeoutMs,
		MaxTabs:             DefaultMaxTabs,
		LogLevel:            "info",
		LogFormat:           "text",
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (if path is non-empty), then SURF_* environment variables.
func Load(path string) (Config, error) {
	cfg := New()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to apply environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges and pattern syntax.
func (c Config) Validate() error {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("viewport dimensions must be positive, got %dx%d", c.ViewportWidth, c.ViewportHeight)
	}
	if c.DefaultTimeoutMs <= 0 {
		return fmt.Errorf("default_timeout_ms must be positive, got %v", c.DefaultTimeoutMs)
	}
	if c.NavigationTimeoutMs <= 0 {
		return fmt.Errorf("navigation_timeout_ms must be positive, got %v", c.NavigationTimeoutMs)
	}
	if c.MaxTabs < 1 {
		return fmt.Errorf("max_tabs must be at least 1, got %d", c.MaxTabs)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be \"text\" or \"json\", got %q", c.LogFormat)
	}
	if _, err := NewHostAllowlist(c.AllowedHosts); err != nil {
		return err
	}
	return nil
}
