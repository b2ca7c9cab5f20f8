package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette shared by command output and the interactive form
var (
	PrimaryColor = lipgloss.Color("#10B981") // Emerald - headers, borders
	AccentColor  = lipgloss.Color("#22D3EE") // Cyan - entropy value
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success markers
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, X marks
	WarningColor = lipgloss.Color("#EAB308") // Yellow - feedback, stale tags
	MutedColor   = lipgloss.Color("#626262") // Gray - labels, secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40 // Minimum supported terminal width
	MaxContentWidth  = 80 // Maximum content width before capping
	DefaultPadding   = 2  // Default padding inside boxes
	defaultHeight    = 24 // Fallback terminal height
)

var (
	// TitleStyle is for the application banner
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// SubtitleStyle is for the line under the banner
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// LabelStyle is for small uppercase field labels ("STRENGTH LEVEL")
	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// StrengthValueStyle is for the strength label
	StrengthValueStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// EntropyValueStyle is for the entropy figure
	EntropyValueStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)

	// FeedbackTitleStyle is for the recommendations header
	FeedbackTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	// FeedbackItemStyle is for one recommendation
	FeedbackItemStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// FeedbackMarkerStyle is for the bullet in front of a recommendation
	FeedbackMarkerStyle = lipgloss.NewStyle().
				Foreground(WarningColor)

	// StaleStyle tags a result that predates a failed attempt
	StaleStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Italic(true)

	// SuccessStyle is for success markers and messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// TroubleshootingTitleStyle is for "Troubleshooting:" headers
	TroubleshootingTitleStyle = lipgloss.NewStyle().
					Foreground(MutedColor).
					Bold(true)

	// TroubleshootingItemStyle is for troubleshooting bullet points
	TroubleshootingItemStyle = lipgloss.NewStyle().
					Foreground(MutedColor)

	// ParamKeyStyle is for header parameter keys (e.g., "Service:")
	ParamKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ParamValueStyle is for header parameter values
	ParamValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)
)

// Status markers
const (
	SuccessMarker  = "✓"
	FailureMarker  = "✗"
	FeedbackMarker = "▸"
)

// GetTerminalWidth returns the current terminal width, clamped to the layout bounds
func GetTerminalWidth() int {
	width, _ := GetTerminalSize()
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MaxContentWidth, defaultHeight
	}
	return ClampWidth(width), height
}

// ClampWidth bounds a terminal width to the supported content range
func ClampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// CardStyle returns the bordered container used for the form and results
func CardStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Padding(1, DefaultPadding)
}

// ErrorBoxStyle returns the border style for error result boxes
func ErrorBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width - 2).
		Padding(0, DefaultPadding)
}

// FeedbackBoxStyle returns the border style for the recommendations list
func FeedbackBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(WarningColor).
		Width(width).
		Padding(0, 1)
}
