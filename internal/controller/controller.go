// Package controller holds the state behind the password form: the entered
// password, the most recent analysis, the loading flag and the visibility
// toggle.
//
// Submission is split into Begin and Settle so an event loop can run the
// network call off the loop and apply its result when it arrives; Submit
// chains the two for synchronous callers.
package controller

import (
	"context"

	"go.uber.org/zap"

	"github.com/muurk/pwcheck/internal/analysis"
	"github.com/muurk/pwcheck/internal/logging"
)

// Evaluator runs one analysis. *analysis.Client satisfies it.
type Evaluator interface {
	Evaluate(ctx context.Context, password string) analysis.Outcome
}

// Controller is the form state. The zero value is an empty, masked form.
// It is not safe for concurrent use; mutate it from a single goroutine.
type Controller struct {
	password        string
	result          *analysis.Result
	loading         bool
	passwordVisible bool
	lastErr         error
	stale           bool
}

// New returns an empty controller.
func New() *Controller {
	return &Controller{}
}

// SetPassword replaces the entered password. It does not touch an
// in-flight request, which was built from the password at Begin.
func (c *Controller) SetPassword(password string) {
	c.password = password
}

// Password returns the entered password.
func (c *Controller) Password() string {
	return c.password
}

// CanSubmit reports whether the submit control is enabled.
func (c *Controller) CanSubmit() bool {
	return c.password != "" && !c.loading
}

// Begin starts a submission. It returns false and changes nothing when the
// password is empty or a request is already in flight.
func (c *Controller) Begin() (analysis.Request, bool) {
	if !c.CanSubmit() {
		return analysis.Request{}, false
	}
	c.loading = true
	logging.LogStateChange("submit_started", zap.Int("password_length", len(c.password)))
	return analysis.Request{Password: c.password}, true
}

// Settle applies the outcome of the request started by Begin.
// A success replaces the result. A failure keeps whatever result was shown
// before, records the error and marks that result stale.
func (c *Controller) Settle(outcome analysis.Outcome) {
	c.loading = false

	if outcome.OK() {
		c.result = outcome.Result
		c.lastErr = nil
		c.stale = false
		logging.LogStateChange("result_applied", zap.String("strength", outcome.Result.Strength))
		return
	}

	err := outcome.Err
	if err == nil {
		err = analysis.NewValidationError("empty outcome")
	}
	c.lastErr = err
	c.stale = c.result != nil
	logging.Warn("Password analysis failed",
		zap.Error(err),
		zap.Bool("kept_previous_result", c.stale),
	)
}

// Submit runs one full submission synchronously and reports whether a
// request was issued.
func (c *Controller) Submit(ctx context.Context, ev Evaluator) bool {
	req, ok := c.Begin()
	if !ok {
		return false
	}
	c.Settle(ev.Evaluate(ctx, req.Password))
	return true
}

// ToggleVisibility flips between masked and plaintext rendering of the password.
func (c *Controller) ToggleVisibility() {
	c.passwordVisible = !c.passwordVisible
}

// PasswordVisible reports whether the password is shown in plaintext.
func (c *Controller) PasswordVisible() bool {
	return c.passwordVisible
}

// Clear resets the password, result and error. Visibility is kept.
// It is ignored while a request is in flight.
func (c *Controller) Clear() {
	if c.loading {
		return
	}
	c.password = ""
	c.result = nil
	c.lastErr = nil
	c.stale = false
}

// Result returns the most recent successful analysis, or nil.
func (c *Controller) Result() *analysis.Result {
	return c.result
}

// Loading reports whether a request is in flight.
func (c *Controller) Loading() bool {
	return c.loading
}

// LastError returns the error from the most recent attempt, or nil if it succeeded.
func (c *Controller) LastError() error {
	return c.lastErr
}

// Stale reports whether the shown result predates a failed attempt.
func (c *Controller) Stale() bool {
	return c.stale
}
