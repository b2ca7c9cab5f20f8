package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muurk/pwcheck/internal/analysis"
	"github.com/muurk/pwcheck/internal/strength"
)

// Printer provides methods for printing UI components to a writer.
// Non-interactive commands use it for styled output.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = ClampWidth(width)
	return p
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints the banner with ordered parameters
func (p *Printer) PrintHeader(title string, params [][2]string) {
	p.Println(TitleStyle.Render(title))
	if len(params) > 0 {
		p.Println(RenderParams(params))
	}
	p.Newline()
}

// PrintResult prints an analysis result inside a card
func (p *Printer) PrintResult(result *analysis.Result, theme strength.Theme) {
	view := ResultView{
		Result: result,
		Theme:  theme,
		Width:  p.width - 2 - 2*DefaultPadding,
	}
	p.Println(CardStyle(p.width).Render(view.Render()))
}

// PrintError prints an error result box with troubleshooting tips
func (p *Printer) PrintError(title string, err error) {
	p.Println(RenderErrorBox(title, err, analysis.TroubleshootingHints(err), p.width))
}
