package tui

import "github.com/charmbracelet/bubbles/key"

// formKeyMap defines key bindings for the password form
type formKeyMap struct {
	Submit key.Binding
	Toggle key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Toggle, k.Clear, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Toggle},
		{k.Clear, k.Quit},
	}
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "analyze"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "show/hide"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// syncKeys disables bindings that would do nothing in the current state,
// which also hides them from the help footer.
func (k *formKeyMap) syncKeys(canSubmit, loading bool) {
	k.Submit.SetEnabled(canSubmit)
	k.Clear.SetEnabled(!loading)
}
