package report

import (
	"io"

	"github.com/muurk/pwcheck/internal/analysis"
	"github.com/muurk/pwcheck/internal/ui"
)

func writeText(w io.Writer, outcome analysis.Outcome, o options) error {
	p := ui.NewPrinter(w)
	if o.width > 0 {
		p.SetWidth(o.width)
	}

	if !outcome.OK() {
		p.PrintError("Password Analysis", outcome.Err)
		return nil
	}

	p.PrintResult(outcome.Result, o.theme)
	return nil
}
