package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/muurk/pwcheck/internal/analysis"
	"github.com/muurk/pwcheck/internal/strength"
)

// Format selects the output encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

var formats = map[Format]bool{
	FormatText:     true,
	FormatJSON:     true,
	FormatMarkdown: true,
}

// Formats lists the supported formats in sorted order.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for f := range formats {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// ParseFormat resolves a format name, case-insensitively. "md" is accepted
// for markdown.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "md" {
		f = FormatMarkdown
	}
	if f == "" {
		return FormatText, nil
	}
	if !formats[f] {
		return "", fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(Formats(), ", "))
	}
	return f, nil
}

type options struct {
	theme   strength.Theme
	width   int
	version string
}

// Option configures Write.
type Option func(*options)

// WithTheme sets the strength bar theme used by the text format.
func WithTheme(t strength.Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithWidth sets the text format's card width. Zero uses the terminal width.
func WithWidth(width int) Option {
	return func(o *options) {
		o.width = width
	}
}

// WithVersion stamps the client version into json and markdown output.
func WithVersion(v string) Option {
	return func(o *options) {
		o.version = v
	}
}

// Write renders outcome to w in the given format.
func Write(w io.Writer, format Format, outcome analysis.Outcome, opts ...Option) error {
	o := options{theme: strength.DefaultTheme()}
	for _, opt := range opts {
		opt(&o)
	}

	switch format {
	case FormatText, "":
		return writeText(w, outcome, o)
	case FormatJSON:
		return writeJSON(w, outcome, o)
	case FormatMarkdown:
		return writeMarkdown(w, outcome, o)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
