package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/muurk/pwcheck/internal/analysis"
	"github.com/muurk/pwcheck/internal/strength"
)

// fakeEvaluator returns queued outcomes in order and records each password
type fakeEvaluator struct {
	mu       sync.Mutex
	outcomes []analysis.Outcome
	calls    []string
}

func (f *fakeEvaluator) Evaluate(_ context.Context, password string) analysis.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, password)
	if len(f.outcomes) == 0 {
		return analysis.Failed(analysis.NewHTTPError(500, ""))
	}
	o := f.outcomes[0]
	f.outcomes = f.outcomes[1:]
	return o
}

func (f *fakeEvaluator) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func newTestModel(ev *fakeEvaluator) AppModel {
	m := NewAppModel(context.Background(), ev, Options{Theme: strength.DefaultTheme(), ServiceURL: "http://localhost:8000"})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return updated.(AppModel)
}

// send applies one message and returns the updated model and command
func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	am, ok := updated.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", updated)
	}
	return am, cmd
}

func typeText(t *testing.T, m AppModel, s string) AppModel {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

// collect runs cmd and flattens batches into their messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func doneMsg(t *testing.T, cmd tea.Cmd) analysisDoneMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if done, ok := msg.(analysisDoneMsg); ok {
			return done
		}
	}
	t.Fatal("command did not produce an analysisDoneMsg")
	return analysisDoneMsg{}
}

func strongResult() *analysis.Result {
	return &analysis.Result{Strength: "Strong", EntropyBits: 52, Score: 4, Feedback: []string{}}
}

func TestNewAppModel_InitialState(t *testing.T) {
	m := newTestModel(&fakeEvaluator{})

	if m.Controller().CanSubmit() {
		t.Error("empty form should not be submittable")
	}
	if m.keys.Submit.Enabled() {
		t.Error("submit binding should start disabled")
	}
	if m.Controller().PasswordVisible() {
		t.Error("password should start masked")
	}

	view := m.View()
	for _, want := range []string{AppName, "PASSWORD", "(hidden)", "Analyze", "http://localhost:8000"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestTyping_UpdatesControllerAndMasks(t *testing.T) {
	m := newTestModel(&fakeEvaluator{})
	m = typeText(t, m, "hunter2")

	if got := m.Controller().Password(); got != "hunter2" {
		t.Errorf("Password() = %q, want hunter2", got)
	}
	if !m.keys.Submit.Enabled() {
		t.Error("submit binding should be enabled once a password is entered")
	}

	view := m.View()
	if strings.Contains(view, "hunter2") {
		t.Error("masked password should not appear in the view")
	}
	if !strings.Contains(view, "•••••••") {
		t.Error("masked password should render as bullets")
	}
}

func TestToggleVisibility(t *testing.T) {
	m := newTestModel(&fakeEvaluator{})
	m = typeText(t, m, "hunter2")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if !m.Controller().PasswordVisible() {
		t.Fatal("ctrl+r should reveal the password")
	}
	if view := m.View(); !strings.Contains(view, "hunter2") || !strings.Contains(view, "(visible)") {
		t.Error("revealed password should be rendered in plaintext")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.Controller().PasswordVisible() {
		t.Error("second toggle should restore masking")
	}
	if m.Controller().Password() != "hunter2" {
		t.Error("toggling should not change the password")
	}
}

func TestSubmit_EmptyPasswordIssuesNoRequest(t *testing.T) {
	ev := &fakeEvaluator{}
	m := newTestModel(ev)

	for i := 0; i < 3; i++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}

	if m.Controller().Loading() {
		t.Error("empty submit should not start loading")
	}
	if n := len(ev.Calls()); n != 0 {
		t.Errorf("evaluator called %d times, want 0", n)
	}
}

func TestSubmit_Success(t *testing.T) {
	ev := &fakeEvaluator{outcomes: []analysis.Outcome{analysis.Succeeded(strongResult())}}
	m := newTestModel(ev)
	m = typeText(t, m, "correct horse")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("submit should return a command")
	}
	if !m.Controller().Loading() {
		t.Error("submit should set loading")
	}
	if m.keys.Submit.Enabled() {
		t.Error("submit should be disabled while loading")
	}
	if !strings.Contains(m.View(), "Analyzing") {
		t.Error("view should show the pending state")
	}

	done := doneMsg(t, cmd)
	m, _ = send(t, m, done)

	if diff := cmp.Diff([]string{"correct horse"}, ev.Calls()); diff != "" {
		t.Errorf("evaluator calls mismatch (-want +got):\n%s", diff)
	}
	if m.Controller().Loading() {
		t.Error("loading should be cleared after the result arrives")
	}
	view := m.View()
	for _, want := range []string{"Strong", "52", "Score: 4/5", "80%"} {
		if !strings.Contains(view, want) {
			t.Errorf("result view missing %q", want)
		}
	}
	if strings.Contains(view, "SECURITY RECOMMENDATIONS") {
		t.Error("empty feedback should not render a recommendations box")
	}
}

func TestSubmit_WhileLoadingIsIgnored(t *testing.T) {
	ev := &fakeEvaluator{outcomes: []analysis.Outcome{analysis.Succeeded(strongResult())}}
	m := newTestModel(ev)
	m = typeText(t, m, "abc")

	m, first := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, second := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	for _, msg := range collect(second) {
		if _, ok := msg.(analysisDoneMsg); ok {
			t.Fatal("second enter should not start another request")
		}
	}

	m, _ = send(t, m, doneMsg(t, first))
	if n := len(ev.Calls()); n != 1 {
		t.Errorf("evaluator called %d times, want 1", n)
	}
}

func TestEditWhileLoading_DoesNotAffectRequest(t *testing.T) {
	ev := &fakeEvaluator{outcomes: []analysis.Outcome{analysis.Succeeded(strongResult())}}
	m := newTestModel(ev)
	m = typeText(t, m, "first")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, "-edited")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	m, _ = send(t, m, doneMsg(t, cmd))

	if diff := cmp.Diff([]string{"first"}, ev.Calls()); diff != "" {
		t.Errorf("request should use the password at submit time (-want +got):\n%s", diff)
	}
	if got := m.Controller().Password(); got != "first-edited" {
		t.Errorf("Password() = %q, want first-edited", got)
	}
}

func TestSubmit_FailureKeepsPreviousResult(t *testing.T) {
	ev := &fakeEvaluator{outcomes: []analysis.Outcome{
		analysis.Succeeded(strongResult()),
		analysis.Failed(analysis.NewHTTPError(500, "")),
	}}
	m := newTestModel(ev)
	m = typeText(t, m, "abc")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, doneMsg(t, cmd))
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, doneMsg(t, cmd))

	c := m.Controller()
	if c.Loading() {
		t.Error("loading should be false after a failure")
	}
	if c.Result() == nil || c.Result().Strength != "Strong" {
		t.Fatalf("previous result should be kept, got %+v", c.Result())
	}
	if !c.Stale() || c.LastError() == nil {
		t.Error("kept result should be stale with an error recorded")
	}

	view := m.View()
	for _, want := range []string{"HTTP 500", "earlier check", "Strong"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestClear(t *testing.T) {
	ev := &fakeEvaluator{outcomes: []analysis.Outcome{analysis.Succeeded(strongResult())}}
	m := newTestModel(ev)
	m = typeText(t, m, "abc")
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, doneMsg(t, cmd))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.Controller().Password() != "" || m.input.Value() != "" {
		t.Error("esc should clear the password")
	}
	if m.Controller().Result() != nil {
		t.Error("esc should clear the result")
	}
	if !strings.Contains(m.View(), "Results appear here") {
		t.Error("cleared form should show the empty state")
	}
}

func TestSpinnerTick_StopsWhenIdle(t *testing.T) {
	m := newTestModel(&fakeEvaluator{})

	_, cmd := send(t, m, m.spinner.Tick())
	if cmd != nil {
		t.Error("spinner should not keep ticking without a pending request")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(&fakeEvaluator{})

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestView_NoSizeYet(t *testing.T) {
	m := NewAppModel(context.Background(), &fakeEvaluator{}, Options{})

	if view := m.View(); !strings.Contains(view, "PASSWORD") {
		t.Error("view should render before the first WindowSizeMsg")
	}
	if m.opts.Theme.Name != strength.DefaultThemeName {
		t.Errorf("zero theme should fall back to %s, got %q", strength.DefaultThemeName, m.opts.Theme.Name)
	}
}
