// Package ui renders pwcheck's styled terminal output.
//
// The components here are pure string renderers built on lipgloss. The
// interactive form (package tui) and the non-interactive check command both
// draw results through ResultView, so a result looks the same wherever it
// appears:
//
//   - ResultView: strength label with icon, entropy, score, strength bar,
//     and the recommendations box (omitted when there is no feedback)
//   - RenderErrorBox: failure box with a short message and troubleshooting
//   - RenderErrorBanner: one-line failure notice shown above a stale result
//   - Printer: writes headers, results and errors to an io.Writer
//
// # Logging Integration
//
// Curated output goes to stdout. zap logging is silent unless
// PWCHECK_LOG_LEVEL or --log-level is set, and it writes to stderr or a log
// file so it never interleaves with the rendered result.
package ui
