package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/pwcheck/internal/analysis"
	"github.com/muurk/pwcheck/internal/strength"
)

func TestFormatEntropy(t *testing.T) {
	tests := []struct {
		bits float64
		want string
	}{
		{0, "0"},
		{28.5, "28.5"},
		{65.55, "65.55"},
		{65.554, "65.55"},
		{12.009, "12.01"},
	}

	for _, tt := range tests {
		if got := FormatEntropy(tt.bits); got != tt.want {
			t.Errorf("FormatEntropy(%v) = %q, want %q", tt.bits, got, tt.want)
		}
	}
}

func TestResultView_NilResult(t *testing.T) {
	if got := (ResultView{Theme: strength.DefaultTheme(), Width: 60}).Render(); got != "" {
		t.Errorf("Render() with no result = %q, want empty", got)
	}
}

func TestResultView_Render(t *testing.T) {
	result := &analysis.Result{
		Strength:    "Strong",
		EntropyBits: 65.55,
		Score:       4,
		Feedback:    []string{"Add symbols", "Avoid dictionary words"},
	}

	out := ResultView{Result: result, Theme: strength.DefaultTheme(), Width: 60}.Render()

	for _, want := range []string{"STRENGTH LEVEL", "Strong", "65.55", "bits", "Score: 4/5", " 80%", "SECURITY RECOMMENDATIONS", "Add symbols", "Avoid dictionary words"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Add symbols") > strings.Index(out, "Avoid dictionary words") {
		t.Error("feedback should keep the service's order")
	}
	if strings.Contains(out, "earlier check") {
		t.Error("fresh result should not be tagged stale")
	}
}

func TestResultView_NoFeedback(t *testing.T) {
	result := &analysis.Result{Strength: "Very Strong", EntropyBits: 90, Score: 5, Feedback: []string{}}

	out := ResultView{Result: result, Theme: strength.DefaultTheme(), Width: 60}.Render()

	if strings.Contains(out, "SECURITY RECOMMENDATIONS") {
		t.Errorf("feedback box should be omitted when empty:\n%s", out)
	}
	if !strings.Contains(out, "100%") {
		t.Errorf("Very Strong should render a full bar:\n%s", out)
	}
}

func TestResultView_Stale(t *testing.T) {
	result := &analysis.Result{Strength: "Weak", EntropyBits: 20, Score: 2}

	out := ResultView{Result: result, Theme: strength.DefaultTheme(), Width: 60, Stale: true}.Render()

	if !strings.Contains(out, "earlier check") {
		t.Errorf("stale result should be tagged:\n%s", out)
	}
}

func TestResultView_UnknownLabel(t *testing.T) {
	result := &analysis.Result{Strength: "Legendary", EntropyBits: 10, Score: 1}
	theme := strength.DefaultTheme()

	out := ResultView{Result: result, Theme: theme, Width: 60}.Render()

	if !strings.Contains(out, "Legendary") {
		t.Error("unknown label should still be shown verbatim")
	}
	if !strings.Contains(out, "  0%") {
		t.Errorf("unknown label should render an empty bar:\n%s", out)
	}
	if strings.Contains(out, theme.Fill) {
		t.Error("unknown label should not fill any cells")
	}
}

func TestRenderErrorBox(t *testing.T) {
	err := analysis.NewHTTPError(500, "http://localhost:8000/check_password")

	out := RenderErrorBox("Password Analysis", err, analysis.TroubleshootingHints(err), 60)

	for _, want := range []string{"FAILED", "Password Analysis", "HTTP 500", "Troubleshooting:"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderErrorBox() missing %q:\n%s", want, out)
		}
	}
}

func TestRenderErrorBox_NoHints(t *testing.T) {
	out := RenderErrorBox("Health", errors.New("boom"), nil, 60)

	if strings.Contains(out, "Troubleshooting:") {
		t.Error("troubleshooting header should be omitted without hints")
	}
	if !strings.Contains(out, "boom") {
		t.Error("untyped error text should be shown")
	}
}

func TestRenderErrorBanner(t *testing.T) {
	if got := RenderErrorBanner(nil); got != "" {
		t.Errorf("RenderErrorBanner(nil) = %q, want empty", got)
	}

	got := RenderErrorBanner(analysis.NewHTTPError(503, ""))
	if !strings.Contains(got, FailureMarker) || !strings.Contains(got, "503") {
		t.Errorf("RenderErrorBanner() = %q", got)
	}
}

func TestClampWidth(t *testing.T) {
	tests := []struct{ in, want int }{
		{10, MinTerminalWidth},
		{MinTerminalWidth, MinTerminalWidth},
		{60, 60},
		{200, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := ClampWidth(tt.in); got != tt.want {
			t.Errorf("ClampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(60)

	if p.Width() != 60 {
		t.Errorf("Width() = %d, want 60", p.Width())
	}

	p.PrintHeader("pwcheck", [][2]string{{"Service", "http://localhost:8000"}, {"Theme", "neon"}})
	p.PrintResult(&analysis.Result{Strength: "Moderate", EntropyBits: 40, Score: 3}, strength.DefaultTheme())
	p.PrintError("Password Analysis", analysis.NewHTTPError(404, ""))

	out := buf.String()
	for _, want := range []string{"pwcheck", "Service:", "http://localhost:8000", "Moderate", "Score: 3/5", " 60%", "HTTP 404", "/check_password"} {
		if !strings.Contains(out, want) {
			t.Errorf("printer output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Service:") > strings.Index(out, "Theme:") {
		t.Error("header params should keep their order")
	}
}
