// Package form holds the data-entry state of the screening form: the eight
// raw fields, the loading flag, and the mutually exclusive error and outcome.
package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/dohr-michael/screener/internal/screening"
)

var (
	// ErrIncomplete is returned by Begin when a field is empty.
	ErrIncomplete = errors.New("all fields are required")
	// ErrInFlight is returned by Begin while a prediction is running.
	ErrInFlight = errors.New("a prediction is already in progress")
)

// Predictor classifies a request. predict.Client implements it.
type Predictor interface {
	Predict(ctx context.Context, req screening.Request) (screening.Outcome, error)
}

// Controller is not safe for concurrent use; the TUI drives it from its
// update loop only.
type Controller struct {
	fields  screening.FormFields
	loading bool
	outcome *screening.Outcome
	errMsg  string
}

// New returns a controller with every field empty.
func New() *Controller {
	return &Controller{}
}

// SetField stores raw text for f. Unknown fields panic.
func (c *Controller) SetField(f screening.Field, value string) {
	c.fields.Set(f, value)
}

// Value returns the raw text of f.
func (c *Controller) Value(f screening.Field) string {
	return c.fields.Get(f)
}

// Fields returns a copy of the raw fields.
func (c *Controller) Fields() screening.FormFields {
	return c.fields
}

// IsSubmittable reports whether every field is non-empty after trimming.
// Numeric validity is checked by Begin, not here.
func (c *Controller) IsSubmittable() bool {
	return c.fields.Complete()
}

// CanSubmit is IsSubmittable while no prediction is in flight.
func (c *Controller) CanSubmit() bool {
	return !c.loading && c.IsSubmittable()
}

// Loading reports whether a prediction is in flight.
func (c *Controller) Loading() bool {
	return c.loading
}

// Outcome returns the last successful outcome, if any.
func (c *Controller) Outcome() (screening.Outcome, bool) {
	if c.outcome == nil {
		return screening.Outcome{}, false
	}
	return *c.outcome, true
}

// Err returns the current error message, or "".
func (c *Controller) Err() string {
	return c.errMsg
}

// Begin starts a submission. It clears the previous error and outcome,
// converts the fields into a request and enters the loading state. Input
// that does not parse as finite numbers sets the error state and is returned
// without entering loading.
func (c *Controller) Begin() (screening.Request, error) {
	if c.loading {
		return screening.Request{}, ErrInFlight
	}
	if !c.IsSubmittable() {
		return screening.Request{}, ErrIncomplete
	}

	c.errMsg = ""
	c.outcome = nil

	req, err := c.fields.Request()
	if err != nil {
		c.errMsg = "Invalid input: " + err.Error()
		return screening.Request{}, err
	}
	c.loading = true
	return req, nil
}

// Complete ends the submission started by Begin.
func (c *Controller) Complete(outcome screening.Outcome, err error) {
	c.loading = false
	if err != nil {
		c.outcome = nil
		c.errMsg = FailureMessage(err)
		return
	}
	c.errMsg = ""
	c.outcome = &outcome
}

// Submit runs Begin, the prediction and Complete synchronously.
func (c *Controller) Submit(ctx context.Context, p Predictor) error {
	req, err := c.Begin()
	if err != nil {
		return err
	}
	outcome, err := p.Predict(ctx, req)
	c.Complete(outcome, err)
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}
	return nil
}

// Reset clears every field, the error and the outcome.
func (c *Controller) Reset() {
	c.fields = screening.FormFields{}
	c.errMsg = ""
	c.outcome = nil
}

// FailureMessage is the user-facing text for a failed prediction.
func FailureMessage(err error) string {
	return fmt.Sprintf("Prediction failed. Ensure the prediction service is running: %v", err)
}
