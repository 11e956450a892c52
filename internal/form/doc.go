// Package form implements the anagram request form controller.
//
// The Controller owns all form state: which of the two screens is visible,
// the two field values and their error messages, the submit control's
// enabled state and label, the rendered results, and the pending alert.
// It has no knowledge of any UI toolkit; the TUI feeds it input events and
// renders from its accessors, and tests drive it directly.
//
// # Views
//
// Exactly one ViewState is active at a time:
//   - FormVisible: fields, inline errors, Generate and Reset controls
//   - ResultsVisible: the anagram list and a control to return to the form
//
// # Submission
//
//	Idle --Submit (valid)--> Submitting --Complete(ok)--> Success
//	                                    --Complete(err)-> Failure
//
// Submit re-validates and returns a Submission carrying a ticket. The caller
// performs the HTTP call and hands the outcome back to Complete together with
// the ticket. A completion whose ticket is no longer current (the form was
// reset, or the user returned from the results view) is ignored.
//
// # Thread Safety
//
// A Controller is not safe for concurrent use. It is meant to be driven from
// a single event loop, such as Bubble Tea's Update.
package form
