package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// clearEnv blanks every override so the host environment cannot leak into a test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAPIURL, EnvTimeout, EnvTheme, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()

	if filepath.Base(path) != "config.yaml" {
		t.Errorf("DefaultPath() should end with 'config.yaml', got: %v", path)
	}
	if filepath.Base(filepath.Dir(path)) != "pwcheck" {
		t.Errorf("DefaultPath() should live in a pwcheck directory, got: %v", path)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, CurrentVersion)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %s, want %s", cfg.APIURL, DefaultAPIURL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: 1
api_url: https://pw.example.com
timeout: 3s
theme: classic
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		Version:  1,
		APIURL:   "https://pw.example.com",
		Timeout:  3 * time.Second,
		Theme:    "classic",
		LogLevel: "debug",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\napi_url: http://10.0.0.2:9000\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timeout != DefaultTimeout || cfg.Theme != "neon" {
		t.Errorf("unset fields should keep defaults, got %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\napi_url: http://file:8000\ntimeout: 3s\n"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvAPIURL, "http://env:8000")
	t.Setenv(EnvTimeout, "750ms")
	t.Setenv(EnvTheme, "classic")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIURL != "http://env:8000" {
		t.Errorf("APIURL = %s, want env value", cfg.APIURL)
	}
	if cfg.Timeout != 750*time.Millisecond {
		t.Errorf("Timeout = %v, want 750ms", cfg.Timeout)
	}
	if cfg.Theme != "classic" || cfg.LogLevel != "warn" {
		t.Errorf("Theme/LogLevel = %s/%s", cfg.Theme, cfg.LogLevel)
	}
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(badYAML, []byte("version: [1\n"), 0600)
	if _, err := Load(badYAML); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}

	future := filepath.Join(dir, "future.yaml")
	_ = os.WriteFile(future, []byte("version: 2\n"), 0600)
	if _, err := Load(future); !errors.Is(err, ErrUnsupportedFile) {
		t.Errorf("Load() error = %v, want ErrUnsupportedFile", err)
	}

	t.Setenv(EnvTimeout, "soon")
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail on an unparsable timeout override")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"https", func(c *Config) { c.APIURL = "https://x.example.com/api" }, false},
		{"empty url", func(c *Config) { c.APIURL = "" }, true},
		{"no scheme", func(c *Config) { c.APIURL = "localhost:8000" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"unknown theme", func(c *Config) { c.Theme = "vaporwave" }, true},
		{"empty theme", func(c *Config) { c.Theme = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.APIURL = "https://pw.example.com"
	cfg.Timeout = 42 * time.Second
	cfg.Theme = "classic"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %v, want 0600", perm)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "# pwcheck configuration") {
		t.Error("saved file should start with the header comment")
	}
	if !strings.Contains(string(data), "timeout: 42s") {
		t.Errorf("timeout should be written as a duration string:\n%s", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
