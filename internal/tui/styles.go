package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pwcheck/internal/ui"
	"github.com/muurk/pwcheck/internal/version"
)

// Application branding constants
const (
	AppName    = "PASSWORD STRENGTH ANALYZER"
	AppTagline = "Entropy-based password analysis"
)

var (
	// Label above the input
	InputLabelStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Bold(true)

	// Visibility hint next to the label
	VisibilityStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true)

	// Border around the text input
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.PrimaryColor).
			Padding(0, 1)

	// Submit control when it can be used
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0B0F14")).
			Background(ui.PrimaryColor).
			Bold(true).
			Padding(0, 2)

	// Submit control when the input is empty or a request is pending
	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(ui.MutedColor).
				Background(lipgloss.Color("#1F2937")).
				Padding(0, 2)

	// Spinner style
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ui.AccentColor)

	// Placeholder shown before the first analysis
	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true)
)

// BuildHeaderContent creates the header line: app name, version and service
func BuildHeaderContent(serviceURL string) string {
	left := lipgloss.NewStyle().
		Foreground(ui.TextColor).
		Bold(true).
		Render(AppName + " v" + version.Version)

	if serviceURL == "" {
		return left
	}

	right := lipgloss.NewStyle().
		Foreground(ui.MutedColor).
		Render(serviceURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer wraps the form with a header, footer and outer
// border filling the terminal. Zero dimensions fall back to the layout
// defaults so the view renders before the first WindowSizeMsg.
func RenderApplicationContainer(header, content, footer string, width, height int) string {
	if width <= 0 {
		width = ui.MaxContentWidth
	}
	if width < ui.MinTerminalWidth {
		width = ui.MinTerminalWidth
	}

	sectionWidth := width - 4 // Leave room for outer border

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(sectionWidth).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(ui.PrimaryColor).
		Foreground(ui.MutedColor).
		Width(sectionWidth).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(sectionWidth).
		Padding(1, 1)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ui.PrimaryColor).
		Width(width - 2).
		AlignVertical(lipgloss.Top)
	if height > 2 {
		border = border.Height(height - 2)
	}

	return border.Render(inner)
}
