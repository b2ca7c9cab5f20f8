package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/muurk/pwcheck/internal/analysis"
	"github.com/muurk/pwcheck/internal/strength"
	"github.com/muurk/pwcheck/internal/ui"
)

func writeMarkdown(w io.Writer, outcome analysis.Outcome, o options) error {
	md := markdown.NewMarkdown(w)
	md.H1("Password Analysis")
	md.PlainText("")

	if outcome.OK() {
		writeResultSection(md, outcome.Result)
	} else {
		writeFailureSection(md, outcome.Err)
	}

	md.HorizontalRule()
	md.PlainText("")
	if o.version != "" {
		md.PlainTextf("*Generated by pwcheck %s. The password itself is never included.*", o.version)
	} else {
		md.PlainText("*Generated by pwcheck. The password itself is never included.*")
	}

	return md.Build()
}

func writeResultSection(md *markdown.Markdown, r *analysis.Result) {
	ind := strength.Indicator(r.Strength)

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Strength", r.Strength},
			{"Entropy", ui.FormatEntropy(r.EntropyBits) + " bits"},
			{"Score", strconv.Itoa(r.Score) + "/" + strconv.Itoa(analysis.MaxScore)},
			{"Indicator", strconv.Itoa(ind.Percent()) + "%"},
		},
	})
	md.PlainText("")

	writeAlert(md, r.Strength, ind)

	md.H2("Recommendations")
	md.PlainText("")
	if !r.HasFeedback() {
		md.PlainText("No recommendations.")
		md.PlainText("")
		return
	}
	md.BulletList(r.Feedback...)
	md.PlainText("")
}

// writeAlert picks the alert kind from the indicator's color tier.
func writeAlert(md *markdown.Markdown, label string, ind strength.Indication) {
	switch ind.Tier {
	case strength.TierDanger:
		md.Cautionf("%s password. It would fall quickly to a guessing attack.", label)
	case strength.TierWarning:
		md.Warningf("%s password. Follow the recommendations below.", label)
	case strength.TierCaution:
		md.Importantf("%s password. Consider making it longer.", label)
	case strength.TierPositive:
		md.Note(label + " password.")
	case strength.TierSuccess:
		md.Tip(label + " password. No changes needed.")
	default:
		md.Note(fmt.Sprintf("Unrecognized strength label %q.", label))
	}
	md.PlainText("")
}

func writeFailureSection(md *markdown.Markdown, err error) {
	doc := newErrorDoc(err)

	md.Cautionf("Analysis failed: %s", doc.Message)
	md.PlainText("")

	if len(doc.Hints) > 0 {
		md.H2("Troubleshooting")
		md.PlainText("")
		md.BulletList(doc.Hints...)
		md.PlainText("")
	}
}
