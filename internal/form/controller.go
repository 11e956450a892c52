package form

import (
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/anagram-form/internal/anagram"
	"github.com/muurk/anagram-form/internal/logging"
	"github.com/muurk/anagram-form/internal/validation"
)

// Submission is an accepted submit action: the request to send and the
// ticket to hand back to Complete.
type Submission struct {
	Ticket  uint64
	Request anagram.Request
}

// Controller holds the state of one form session
type Controller struct {
	view   ViewState
	submit SubmitState

	name string
	text string

	nameErr string
	textErr string

	submitEnabled bool
	submitLabel   string

	results []string
	alert   string

	// pending is the ticket of the in-flight submission, 0 when none
	pending    uint64
	lastTicket uint64
}

// NewController creates a controller showing an empty form with the
// submit control disabled.
func NewController() *Controller {
	return &Controller{
		view:        FormVisible,
		submit:      Idle,
		submitLabel: SubmitLabel,
	}
}

// View returns the visible screen
func (c *Controller) View() ViewState { return c.view }

// SubmitState returns the submission state
func (c *Controller) SubmitState() SubmitState { return c.submit }

// Name returns the raw user name field value
func (c *Controller) Name() string { return c.name }

// Text returns the raw input text field value
func (c *Controller) Text() string { return c.text }

// NameError returns the inline error for the user name field
func (c *Controller) NameError() string { return c.nameErr }

// TextError returns the inline error for the input text field
func (c *Controller) TextError() string { return c.textErr }

// SubmitEnabled reports whether the Generate control accepts input
func (c *Controller) SubmitEnabled() bool { return c.submitEnabled }

// SubmitLabel returns the Generate control's current label
func (c *Controller) SubmitLabel() string { return c.submitLabel }

// Alert returns the pending alert message, or "" when none
func (c *Controller) Alert() string { return c.alert }

// Pending reports whether a submission is in flight
func (c *Controller) Pending() bool { return c.submit == Submitting }

// Results returns a copy of the rendered anagrams in response order
func (c *Controller) Results() []string {
	out := make([]string, len(c.results))
	copy(out, c.results)
	return out
}

// SetName handles an input event on the user name field
func (c *Controller) SetName(value string) validation.Result {
	if c.view != FormVisible {
		return c.current()
	}
	c.name = value
	return c.Validate()
}

// SetText handles an input event on the input text field
func (c *Controller) SetText(value string) validation.Result {
	if c.view != FormVisible {
		return c.current()
	}
	c.text = value
	return c.Validate()
}

// Validate re-runs the field rules, updating both inline errors and the
// submit control. The control stays disabled while a request is in flight.
func (c *Controller) Validate() validation.Result {
	res := validation.Validate(c.name, c.text)
	c.nameErr = res.NameError
	c.textErr = res.TextError
	c.submitEnabled = res.Valid && c.submit != Submitting

	logging.LogValidation(len(c.name), len(c.text), res.NameError, res.TextError)
	return res
}

// Submit handles the submit action. It returns false without changing any
// state when the form is not visible, a request is already in flight, or
// the fields are invalid.
func (c *Controller) Submit() (Submission, bool) {
	if c.view != FormVisible || c.submit == Submitting {
		return Submission{}, false
	}
	if !c.Validate().Valid {
		return Submission{}, false
	}

	c.lastTicket++
	c.pending = c.lastTicket
	c.setSubmitState(Submitting)
	c.submitEnabled = false
	c.submitLabel = BusyLabel
	c.alert = ""

	return Submission{
		Ticket: c.pending,
		Request: anagram.Request{
			UserName:  strings.TrimSpace(c.name),
			InputText: strings.TrimSpace(c.text),
		},
	}, true
}

// Complete applies the result of the submission identified by ticket.
// On success the results view replaces the form; on failure an alert is
// raised and the form stays visible with its contents intact. Either way
// the submit label is restored and validation re-run.
func (c *Controller) Complete(ticket uint64, resp *anagram.Response, err error) Outcome {
	if c.submit != Submitting || ticket != c.pending {
		logging.Debug("Ignoring stale submission result",
			zap.Uint64("ticket", ticket),
			zap.Uint64("pending", c.pending),
		)
		return OutcomeStale
	}
	c.pending = 0

	var outcome Outcome
	if err == nil && resp == nil {
		err = anagram.NewParseError("empty response", nil)
	}

	if err != nil {
		c.alert = anagram.AlertMessage(err)
		c.setSubmitState(Failure)
		outcome = OutcomeAlert
	} else {
		c.results = make([]string, len(resp.Anagrams))
		copy(c.results, resp.Anagrams)
		c.setSubmitState(Success)
		c.setView(ResultsVisible)
		outcome = OutcomeResults
	}

	c.submitLabel = SubmitLabel
	c.Validate()
	return outcome
}

// DismissAlert clears the pending alert
func (c *Controller) DismissAlert() {
	c.alert = ""
}

// Reset clears both fields and both errors and disables the submit control
// until the next input event. An in-flight submission is abandoned.
func (c *Controller) Reset() {
	if c.view != FormVisible {
		return
	}
	c.clear()
}

// ReturnToForm leaves the results view, showing an empty form with the
// submit control disabled.
func (c *Controller) ReturnToForm() {
	if c.view != ResultsVisible {
		return
	}
	c.setView(FormVisible)
	c.clear()
}

func (c *Controller) clear() {
	c.name = ""
	c.text = ""
	c.nameErr = ""
	c.textErr = ""
	c.results = nil
	c.alert = ""
	c.pending = 0
	c.submitEnabled = false
	c.submitLabel = SubmitLabel
	c.setSubmitState(Idle)
}

// current evaluates the rules without touching controller state
func (c *Controller) current() validation.Result {
	return validation.Validate(c.name, c.text)
}

func (c *Controller) setView(v ViewState) {
	if c.view == v {
		return
	}
	logging.LogTransition("view", c.view.String(), v.String())
	c.view = v
}

func (c *Controller) setSubmitState(s SubmitState) {
	if c.submit == s {
		return
	}
	logging.LogTransition("submit", c.submit.String(), s.String())
	c.submit = s
}
