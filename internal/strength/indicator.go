package strength

import "strings"

// Level is one tier of the service's five-tier classification.
type Level int

const (
	Unknown Level = iota
	VeryWeak
	Weak
	Moderate
	Strong
	VeryStrong
)

// String returns the canonical label for the level.
func (l Level) String() string {
	switch l {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// ColorTier is the semantic color of a level, resolved to a concrete color by a Theme.
type ColorTier int

const (
	TierNeutral ColorTier = iota
	TierDanger
	TierWarning
	TierCaution
	TierPositive
	TierSuccess
)

// String returns the tier token.
func (t ColorTier) String() string {
	switch t {
	case TierDanger:
		return "danger"
	case TierWarning:
		return "warning"
	case TierCaution:
		return "caution"
	case TierPositive:
		return "positive"
	case TierSuccess:
		return "success"
	default:
		return "neutral"
	}
}

// Indication is the render-ready form of a strength label.
type Indication struct {
	Level     Level
	FillRatio float64
	Tier      ColorTier
}

// Percent returns the fill ratio as a whole percentage.
func (i Indication) Percent() int {
	return int(i.FillRatio*100 + 0.5)
}

var levels = map[string]Level{
	"very weak":   VeryWeak,
	"weak":        Weak,
	"moderate":    Moderate,
	"strong":      Strong,
	"very strong": VeryStrong,
}

var indications = map[Level]Indication{
	Unknown:    {Level: Unknown, FillRatio: 0, Tier: TierNeutral},
	VeryWeak:   {Level: VeryWeak, FillRatio: 0.2, Tier: TierDanger},
	Weak:       {Level: Weak, FillRatio: 0.4, Tier: TierWarning},
	Moderate:   {Level: Moderate, FillRatio: 0.6, Tier: TierCaution},
	Strong:     {Level: Strong, FillRatio: 0.8, Tier: TierPositive},
	VeryStrong: {Level: VeryStrong, FillRatio: 1.0, Tier: TierSuccess},
}

// Parse maps a label to a level, ignoring case and surrounding whitespace.
// Unrecognized labels, including the empty string, are Unknown.
func Parse(label string) Level {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return l
	}
	return Unknown
}

// Indicator returns the fill and tier for label. It never fails:
// unrecognized labels degrade to an empty, neutral bar.
func Indicator(label string) Indication {
	return indications[Parse(label)]
}

// Icon is the semantic icon class shown next to the strength label.
type Icon int

const (
	IconWarning Icon = iota
	IconCaution
	IconAffirmative
)

// String returns the icon class name.
func (i Icon) String() string {
	switch i {
	case IconAffirmative:
		return "affirmative"
	case IconCaution:
		return "caution"
	default:
		return "warning"
	}
}

// IconFor selects the icon for label. Weak tiers and unknown labels get the warning icon.
func IconFor(label string) Icon {
	switch Parse(label) {
	case Strong, VeryStrong:
		return IconAffirmative
	case Moderate:
		return IconCaution
	default:
		return IconWarning
	}
}
