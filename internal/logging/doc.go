// Package logging provides structured logging for pwcheck.
//
// This package wraps a package-global zap logger with convenience functions.
// Logging is silent by default so the interactive form and command output are
// not interleaved with log lines; it is enabled with --log-level or the
// PWCHECK_LOG_LEVEL environment variable.
//
// # Log Levels
//
//   - Debug: controller state changes (submit started, result applied)
//   - Info: completed analysis requests
//   - Warn: failed analysis requests (non-2xx, network, invalid body)
//   - Error: startup failures
//
// # Structured Logging
//
//	logging.LogAnalysis(endpoint, resp.StatusCode, time.Since(start), err)
//
// Passwords are never logged. Only the endpoint, status, timing and error
// classification are recorded.
//
// # Configuration
//
//	if err := logging.Initialize(logging.Options{Level: "debug", File: "pwcheck.log"}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Without a file, logs go to stderr because the terminal UI owns stdout.
package logging
