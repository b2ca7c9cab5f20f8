// Package config loads and saves the pwcheck configuration file.
//
// The file is YAML and lives in the XDG config directory:
//   - Linux: $XDG_CONFIG_HOME/pwcheck/config.yaml or $HOME/.config/pwcheck/config.yaml
//   - macOS: $HOME/Library/Application Support/pwcheck/config.yaml
//   - Windows: %LOCALAPPDATA%\pwcheck\config.yaml
//
// # Precedence
//
// Command-line flags override environment variables, which override the file,
// which overrides built-in defaults. This package handles the last three;
// cmd/pwcheck applies flags on top of the loaded Config.
//
//	PWCHECK_API_URL    base URL of the analysis service
//	PWCHECK_TIMEOUT    per-request timeout (Go duration, e.g. "10s")
//	PWCHECK_THEME      strength bar palette (neon, classic)
//	PWCHECK_LOG_LEVEL  debug, info, warn or error; unset means silent
//
// # Security
//
// The password under analysis is never written to the configuration file.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
