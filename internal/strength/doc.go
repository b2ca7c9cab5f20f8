// Package strength maps the analysis service's strength labels to what the
// user sees: a proportional fill, a semantic color tier and an icon class.
//
// Everything here is a pure lookup. Labels are matched case-insensitively;
// anything outside the five known tiers renders as an empty, neutral bar.
//
//	ind := strength.Indicator("Strong") // 80%, positive
//	bar := strength.RenderBar("Strong", 40, strength.DefaultTheme())
//
// A Theme resolves tiers to concrete colors so the interactive form and the
// command output share one table instead of each carrying its own palette.
package strength
