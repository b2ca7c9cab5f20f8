// Package report writes a single analysis outcome in one of three formats:
//
//   - text: the styled result card from package ui, for terminals
//   - json: a stable document for scripts and other tools
//   - markdown: a shareable summary with a properties table, an alert
//     matched to the strength tier, and the recommendations as a list
//
// Every format renders failures as well as successes, so callers can pipe
// the output of `pwcheck check` regardless of how the request went.
package report
