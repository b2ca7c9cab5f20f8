package strength

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme resolves color tiers to concrete colors and picks the bar glyphs.
type Theme struct {
	Name   string
	Colors map[ColorTier]lipgloss.Color
	Track  lipgloss.Color // Color of the unfilled part of the bar
	Fill   string         // Glyph for filled cells
	Empty  string         // Glyph for unfilled cells
	Icons  map[Icon]string
}

// DefaultThemeName is used when no theme is configured.
const DefaultThemeName = "neon"

var themes = map[string]Theme{
	"neon": {
		Name: "neon",
		Colors: map[ColorTier]lipgloss.Color{
			TierNeutral:  lipgloss.Color("#4B5563"), // gray-600
			TierDanger:   lipgloss.Color("#EF4444"), // red-500
			TierWarning:  lipgloss.Color("#F97316"), // orange-500
			TierCaution:  lipgloss.Color("#EAB308"), // yellow-500
			TierPositive: lipgloss.Color("#84CC16"), // lime-500
			TierSuccess:  lipgloss.Color("#10B981"), // emerald-500
		},
		Track: lipgloss.Color("#1F2937"),
		Fill:  "█",
		Empty: "░",
		Icons: map[Icon]string{
			IconAffirmative: "✓",
			IconCaution:     "◆",
			IconWarning:     "▲",
		},
	},
	"classic": {
		Name: "classic",
		Colors: map[ColorTier]lipgloss.Color{
			TierNeutral:  lipgloss.Color("#E5E7EB"), // gray-200
			TierDanger:   lipgloss.Color("#DC2626"), // red-600
			TierWarning:  lipgloss.Color("#F97316"), // orange-500
			TierCaution:  lipgloss.Color("#FACC15"), // yellow-400
			TierPositive: lipgloss.Color("#22C55E"), // green-500
			TierSuccess:  lipgloss.Color("#15803D"), // green-700
		},
		Track: lipgloss.Color("#E5E7EB"),
		Fill:  "■",
		Empty: "·",
		Icons: map[Icon]string{
			IconAffirmative: "+",
			IconCaution:     "~",
			IconWarning:     "!",
		},
	},
}

// ThemeNames lists the built-in themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName looks up a built-in theme, case-insensitively.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return t, nil
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	return themes[DefaultThemeName]
}

// Color returns the color for tier.
func (t Theme) Color(tier ColorTier) lipgloss.Color {
	if c, ok := t.Colors[tier]; ok {
		return c
	}
	return t.Colors[TierNeutral]
}

// Style returns a foreground style in the tier's color.
func (t Theme) Style(tier ColorTier) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Color(tier))
}

// IconGlyph returns the glyph for the icon selected by label, colored like its tier.
func (t Theme) IconGlyph(label string) string {
	return t.Style(Indicator(label).Tier).Render(t.Icons[IconFor(label)])
}

// FilledCells returns how many of width cells the indication fills.
func FilledCells(ind Indication, width int) int {
	if width <= 0 {
		return 0
	}
	n := int(math.Round(ind.FillRatio * float64(width)))
	if n > width {
		n = width
	}
	return n
}

// RenderBar draws a proportional bar of width cells for label.
func RenderBar(label string, width int, t Theme) string {
	ind := Indicator(label)
	filled := FilledCells(ind, width)
	if width < 0 {
		width = 0
	}

	var b strings.Builder
	b.WriteString(t.Style(ind.Tier).Render(strings.Repeat(t.Fill, filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(t.Track).Render(strings.Repeat(t.Empty, width-filled)))
	return b.String()
}
