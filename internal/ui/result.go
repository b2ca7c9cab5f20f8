package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pwcheck/internal/analysis"
	"github.com/muurk/pwcheck/internal/strength"
)

// ResultView renders an analysis result. The interactive form and the
// check command both use it, so the two never drift apart.
type ResultView struct {
	Result *analysis.Result
	Theme  strength.Theme
	Width  int  // Content width, excluding any surrounding card
	Stale  bool // Result predates a failed attempt
}

// FormatEntropy renders an entropy estimate with at most two decimals.
func FormatEntropy(bits float64) string {
	return strconv.FormatFloat(math.Round(bits*100)/100, 'f', -1, 64)
}

// Render returns the styled result panel, or "" when there is no result.
func (v ResultView) Render() string {
	r := v.Result
	if r == nil {
		return ""
	}

	width := v.Width
	if width < MinTerminalWidth-8 {
		width = MinTerminalWidth - 8
	}

	var sections []string

	// Strength and entropy side by side
	left := lipgloss.JoinVertical(lipgloss.Left,
		LabelStyle.Render("STRENGTH LEVEL"),
		v.Theme.IconGlyph(r.Strength)+" "+StrengthValueStyle.Render(r.Strength),
	)
	right := lipgloss.JoinVertical(lipgloss.Right,
		LabelStyle.Render("ENTROPY"),
		EntropyValueStyle.Render(FormatEntropy(r.EntropyBits))+LabelStyle.Render(" bits"),
	)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right))

	// Proportional bar
	ind := strength.Indicator(r.Strength)
	barWidth := width - 6
	bar := strength.RenderBar(r.Strength, barWidth, v.Theme)
	sections = append(sections, "", bar+" "+LabelStyle.Render(fmt.Sprintf("%3d%%", ind.Percent())))
	sections = append(sections, LabelStyle.Render(fmt.Sprintf("Score: %d/%d", r.Score, analysis.MaxScore)))

	if v.Stale {
		sections = append(sections, StaleStyle.Render("(from an earlier check - the last attempt failed)"))
	}

	// Feedback list is omitted entirely when empty
	if r.HasFeedback() {
		sections = append(sections, "", RenderFeedback(r.Feedback, width))
	}

	return strings.Join(sections, "\n")
}

// RenderFeedback renders the recommendations box in the order given.
func RenderFeedback(items []string, width int) string {
	lines := []string{FeedbackTitleStyle.Render("SECURITY RECOMMENDATIONS")}
	for _, item := range items {
		lines = append(lines, FeedbackMarkerStyle.Render(FeedbackMarker)+" "+FeedbackItemStyle.Render(item))
	}
	return FeedbackBoxStyle(width - 4).Render(strings.Join(lines, "\n"))
}

// RenderErrorBox renders an error result box with troubleshooting
func RenderErrorBox(title string, err error, troubleshooting []string, width int) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, ErrorTitleStyle.Render(FailureMarker+"  FAILED  ─  "+title))
	lines = append(lines, "")

	if err != nil {
		lines = append(lines, ErrorMessageStyle.Render("Error: "+analysis.ShortMessage(err)))
		lines = append(lines, "")
	}

	if len(troubleshooting) > 0 {
		lines = append(lines, TroubleshootingTitleStyle.Render("Troubleshooting:"))
		for _, tip := range troubleshooting {
			lines = append(lines, TroubleshootingItemStyle.Render("  • "+tip))
		}
		lines = append(lines, "")
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderErrorBanner renders the one-line failure notice shown above a result
func RenderErrorBanner(err error) string {
	if err == nil {
		return ""
	}
	return ErrorMessageStyle.Render(FailureMarker + " " + analysis.ShortMessage(err))
}

// RenderParams renders ordered "key: value" lines for command headers
func RenderParams(params [][2]string) string {
	lines := make([]string, len(params))
	for i, p := range params {
		lines[i] = ParamKeyStyle.Render(p[0]+":") + " " + ParamValueStyle.Render(p[1])
	}
	return strings.Join(lines, "\n")
}
