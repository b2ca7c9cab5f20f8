// Package tui implements the interactive password form.
//
// The form is a single Bubble Tea model (AppModel) built on the Elm
// architecture. All form state (password, latest result, loading flag,
// visibility, last error) lives in a controller.Controller; the model owns
// only the widgets and translates messages into controller calls.
//
// # Framework Components
//
//   - bubbles/textinput: password entry, masked with • until toggled
//   - bubbles/spinner: shown while a request is pending
//   - bubbles/help + bubbles/key: context-aware footer
//   - lipgloss: layout, plus the result card from package ui
//
// # Key Bindings
//
//   - enter: analyze (disabled while the input is empty or a request is pending)
//   - ctrl+r: show or hide the password
//   - esc: clear the form
//   - ctrl+c: quit
//
// # Request Flow
//
// Pressing enter calls Controller.Begin, which snapshots the password and
// sets the loading flag. The request runs in a tea.Cmd, so the event loop
// keeps handling keys; editing or toggling visibility while it is pending
// does not affect it. The command returns an analysisDoneMsg, which is
// applied with Controller.Settle. A failed request keeps the previous result
// on screen, tagged as stale, below an error banner.
//
// # Thread Safety
//
// The controller is only touched from Update, which Bubble Tea runs on a
// single goroutine. The request command never mutates state directly.
package tui
