package report

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/muurk/pwcheck/internal/analysis"
	"github.com/muurk/pwcheck/internal/strength"
)

// Document is the json output. Field names are stable.
type Document struct {
	Status    string           `json:"status"` // "ok" or "error"
	Version   string           `json:"version,omitempty"`
	Result    *analysis.Result `json:"result,omitempty"`
	Indicator *IndicatorDoc    `json:"indicator,omitempty"`
	Error     *ErrorDoc        `json:"error,omitempty"`
}

// IndicatorDoc is the derived strength bar state.
type IndicatorDoc struct {
	Level       string `json:"level"`
	FillPercent int    `json:"fill_percent"`
	Tier        string `json:"tier"`
	Icon        string `json:"icon"`
}

// ErrorDoc describes a failed analysis.
type ErrorDoc struct {
	Type       string   `json:"type"`
	Message    string   `json:"message"`
	StatusCode int      `json:"status_code,omitempty"`
	Hints      []string `json:"hints,omitempty"`
}

// NewDocument builds the json document for outcome.
func NewDocument(outcome analysis.Outcome, version string) *Document {
	doc := &Document{Version: version}

	if !outcome.OK() {
		doc.Status = "error"
		doc.Error = newErrorDoc(outcome.Err)
		return doc
	}

	r := outcome.Result
	ind := strength.Indicator(r.Strength)
	doc.Status = "ok"
	doc.Result = r
	doc.Indicator = &IndicatorDoc{
		Level:       ind.Level.String(),
		FillPercent: ind.Percent(),
		Tier:        ind.Tier.String(),
		Icon:        strength.IconFor(r.Strength).String(),
	}
	return doc
}

func newErrorDoc(err error) *ErrorDoc {
	if err == nil {
		err = analysis.NewValidationError("empty outcome")
	}

	doc := &ErrorDoc{
		Type:    analysis.ErrTypeUnknown.String(),
		Message: analysis.ShortMessage(err),
		Hints:   analysis.TroubleshootingHints(err),
	}

	var e *analysis.Error
	if errors.As(err, &e) {
		doc.Type = e.Type.String()
		doc.StatusCode = e.StatusCode
	}
	return doc
}

func writeJSON(w io.Writer, outcome analysis.Outcome, o options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(outcome, o.version))
}
