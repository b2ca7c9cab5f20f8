package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pwcheck/internal/analysis"
	"github.com/muurk/pwcheck/internal/controller"
	"github.com/muurk/pwcheck/internal/strength"
	"github.com/muurk/pwcheck/internal/ui"
)

// analysisDoneMsg carries the outcome of the request started by submit
type analysisDoneMsg struct {
	outcome analysis.Outcome
}

// Options configures the form.
type Options struct {
	Theme      strength.Theme
	ServiceURL string // Shown in the header only
}

// AppModel is the password form. Form state lives in the controller; the
// model owns the widgets and turns key presses into controller calls.
type AppModel struct {
	ctx       context.Context
	ctrl      *controller.Controller
	evaluator controller.Evaluator
	opts      Options

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    formKeyMap

	// UI state
	Width  int
	Height int
}

// NewAppModel creates the form. Requests run through ev with ctx.
func NewAppModel(ctx context.Context, ev controller.Evaluator, opts Options) AppModel {
	if opts.Theme.Name == "" {
		opts.Theme = strength.DefaultTheme()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter a password to analyze"
	ti.Prompt = ""
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := AppModel{
		ctx:       ctx,
		ctrl:      controller.New(),
		evaluator: ev,
		opts:      opts,
		input:     ti,
		spinner:   s,
		help:      help.New(),
		keys:      newFormKeyMap(),
	}
	m.keys.syncKeys(m.ctrl.CanSubmit(), m.ctrl.Loading())
	return m
}

// Controller exposes the form state.
func (m AppModel) Controller() *controller.Controller {
	return m.ctrl
}

// Init starts the cursor blinking
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.keys.syncKeys(m.ctrl.CanSubmit(), m.ctrl.Loading())
	return m, cmd
}

func (m AppModel) update(msg tea.Msg) (AppModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case analysisDoneMsg:
		m.ctrl.Settle(msg.outcome)
		return m, nil

	case spinner.TickMsg:
		// Let the spinner stop once nothing is pending
		if !m.ctrl.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m AppModel) handleKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.ToggleVisibility()
		if m.ctrl.PasswordVisible() {
			m.input.EchoMode = textinput.EchoNormal
		} else {
			m.input.EchoMode = textinput.EchoPassword
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.ctrl.Clear()
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetPassword(m.input.Value())
	return m, cmd
}

// submit starts a request off the event loop. The controller refuses when
// the password is empty or a request is already pending.
func (m AppModel) submit() (AppModel, tea.Cmd) {
	req, ok := m.ctrl.Begin()
	if !ok {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, evaluate(m.ctx, m.evaluator, req.Password))
}

func evaluate(ctx context.Context, ev controller.Evaluator, password string) tea.Cmd {
	return func() tea.Msg {
		return analysisDoneMsg{outcome: ev.Evaluate(ctx, password)}
	}
}

// View renders the form
func (m AppModel) View() string {
	header := BuildHeaderContent(m.opts.ServiceURL)
	footer := m.help.View(m.keys)
	return RenderApplicationContainer(header, m.buildContent(), footer, m.Width, m.Height)
}

func (m AppModel) contentWidth() int {
	width := m.Width
	if width <= 0 {
		width = ui.MaxContentWidth
	}
	// Outer border, section padding and card border/padding
	return ui.ClampWidth(width) - 4 - 2 - 2 - 2*ui.DefaultPadding
}

func (m AppModel) buildContent() string {
	width := m.contentWidth()
	var b strings.Builder

	b.WriteString(ui.SubtitleStyle.Render(AppTagline))
	b.WriteString("\n\n")

	// Input
	visibility := "hidden"
	if m.ctrl.PasswordVisible() {
		visibility = "visible"
	}
	b.WriteString(InputLabelStyle.Render("PASSWORD") + "  " + VisibilityStyle.Render("("+visibility+")"))
	b.WriteString("\n")
	b.WriteString(InputBoxStyle.Width(width).Render(m.input.View()))
	b.WriteString("\n\n")

	// Submit control
	b.WriteString(m.renderSubmit())
	b.WriteString("\n")

	if err := m.ctrl.LastError(); err != nil {
		b.WriteString("\n")
		b.WriteString(ui.RenderErrorBanner(err))
		b.WriteString("\n")
	}

	if r := m.ctrl.Result(); r != nil {
		view := ui.ResultView{
			Result: r,
			Theme:  m.opts.Theme,
			Width:  width,
			Stale:  m.ctrl.Stale(),
		}
		b.WriteString("\n")
		b.WriteString(ui.CardStyle(width + 2 + 2*ui.DefaultPadding).Render(view.Render()))
	} else if m.ctrl.LastError() == nil && !m.ctrl.Loading() {
		b.WriteString("\n")
		b.WriteString(EmptyStateStyle.Render("Results appear here after you press enter."))
	}

	return b.String()
}

func (m AppModel) renderSubmit() string {
	if m.ctrl.Loading() {
		return lipgloss.JoinHorizontal(lipgloss.Center,
			DisabledButtonStyle.Render("Analyzing"),
			" ",
			m.spinner.View(),
		)
	}
	if !m.ctrl.CanSubmit() {
		return DisabledButtonStyle.Render("Analyze")
	}
	return ButtonStyle.Render("Analyze")
}

// Run starts the form in the alternate screen and blocks until the user quits.
func Run(ctx context.Context, ev controller.Evaluator, opts Options) error {
	program := tea.NewProgram(
		NewAppModel(ctx, ev, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	return err
}
