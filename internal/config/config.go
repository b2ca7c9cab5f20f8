package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/muurk/pwcheck/internal/strength"
)

const (
	appName    = "pwcheck"
	configFile = "config.yaml"

	// CurrentVersion is the config file schema version
	CurrentVersion = 1

	// DefaultAPIURL matches the analysis service's default development address
	DefaultAPIURL = "http://localhost:8000"

	// DefaultTimeout is the per-request timeout for the analysis service
	DefaultTimeout = 15 * time.Second
)

// Environment variables that override the config file
const (
	EnvAPIURL   = "PWCHECK_API_URL"
	EnvTimeout  = "PWCHECK_TIMEOUT"
	EnvTheme    = "PWCHECK_THEME"
	EnvLogLevel = "PWCHECK_LOG_LEVEL"
)

var (
	ErrMissingAPIURL   = errors.New("api_url is required")
	ErrInvalidTimeout  = errors.New("timeout must be positive")
	ErrUnsupportedFile = errors.New("unsupported config version")
)

// Config is the user configuration.
// The password being checked is never stored here.
type Config struct {
	Version  int           `yaml:"version"`
	APIURL   string        `yaml:"api_url"`             // Base URL of the analysis service
	Timeout  time.Duration `yaml:"timeout"`             // Per-request timeout, e.g. "15s"
	Theme    string        `yaml:"theme,omitempty"`     // Strength bar palette
	LogLevel string        `yaml:"log_level,omitempty"` // Empty means silent
}

// Default returns a Config with built-in defaults.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		APIURL:  DefaultAPIURL,
		Timeout: DefaultTimeout,
		Theme:   strength.DefaultThemeName,
	}
}

// Dir returns the XDG config directory for pwcheck.
// On Linux: ~/.config/pwcheck
// On macOS: ~/Library/Application Support/pwcheck
// On Windows: %LOCALAPPDATA%\pwcheck
func Dir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// DefaultPath returns the full path to the default configuration file.
func DefaultPath() string {
	return filepath.Join(Dir(), configFile)
}

// Load reads the config at path (DefaultPath when empty), falling back to
// defaults when the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedFile, cfg.Version, CurrentVersion)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		c.Timeout = d
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return ErrMissingAPIURL
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api_url %q must be an absolute http or https URL", c.APIURL)
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if _, err := strength.ThemeByName(c.Theme); err != nil {
		return err
	}

	return nil
}

// Save writes the config to path (DefaultPath when empty).
// Performs an atomic write to prevent corruption on crash.
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# pwcheck configuration
# Passwords are never stored in this file.
#
# Environment overrides: ` + strings.Join([]string{EnvAPIURL, EnvTimeout, EnvTheme, EnvLogLevel}, ", ") + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// YAML returns the config as it would be written to disk, without the header.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}
