package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/anagram-form/internal/anagram"
	"github.com/muurk/anagram-form/internal/validation"
)

// filledController returns a controller with valid input in both fields
func filledController(t *testing.T) *Controller {
	t.Helper()
	c := NewController()
	c.SetName("Ann Lee")
	c.SetText("abc")
	if !c.SubmitEnabled() {
		t.Fatalf("submit should be enabled for valid input, errors: %q %q", c.NameError(), c.TextError())
	}
	return c
}

func mustSubmit(t *testing.T, c *Controller) Submission {
	t.Helper()
	sub, ok := c.Submit()
	if !ok {
		t.Fatal("Submit() rejected valid input")
	}
	return sub
}

func TestNewController(t *testing.T) {
	c := NewController()

	if c.View() != FormVisible {
		t.Errorf("View() = %v, want form", c.View())
	}
	if c.SubmitState() != Idle {
		t.Errorf("SubmitState() = %v, want idle", c.SubmitState())
	}
	if c.SubmitEnabled() {
		t.Error("submit should start disabled")
	}
	if c.SubmitLabel() != SubmitLabel {
		t.Errorf("SubmitLabel() = %q, want %q", c.SubmitLabel(), SubmitLabel)
	}
	if c.NameError() != "" || c.TextError() != "" {
		t.Error("errors should start empty")
	}
}

func TestInputEventsRevalidate(t *testing.T) {
	tests := []struct {
		name        string
		userName    string
		text        string
		wantNameErr string
		wantTextErr string
		wantEnabled bool
	}{
		{"empty name", "   ", "abc", validation.MsgNameEmpty, "", false},
		{"too many words", "aa bb cc dd ee ff gg hh ii jj kk", "abc", validation.MsgNameTooMany, "", false},
		{"short word", "Al", "abc", validation.MsgWordTooShort, "", false},
		{"long word", "Bartholomew", "abc", validation.MsgWordTooLong, "", false},
		{"empty text", "Ann Lee", "  ", "", validation.MsgTextEmpty, false},
		{"valid", "Ann Lee", "abc", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			c.SetName(tt.userName)
			c.SetText(tt.text)

			if c.NameError() != tt.wantNameErr {
				t.Errorf("NameError() = %q, want %q", c.NameError(), tt.wantNameErr)
			}
			if c.TextError() != tt.wantTextErr {
				t.Errorf("TextError() = %q, want %q", c.TextError(), tt.wantTextErr)
			}
			if c.SubmitEnabled() != tt.wantEnabled {
				t.Errorf("SubmitEnabled() = %v, want %v", c.SubmitEnabled(), tt.wantEnabled)
			}
		})
	}
}

func TestSubmit_InvalidIsSilent(t *testing.T) {
	c := NewController()
	c.SetName("Al")
	c.SetText("abc")

	if _, ok := c.Submit(); ok {
		t.Fatal("Submit() should reject invalid input")
	}
	if c.SubmitState() != Idle {
		t.Errorf("SubmitState() = %v, want idle", c.SubmitState())
	}
	if c.SubmitLabel() != SubmitLabel {
		t.Errorf("SubmitLabel() = %q, want %q", c.SubmitLabel(), SubmitLabel)
	}
	if c.Alert() != "" {
		t.Errorf("Alert() = %q, want empty", c.Alert())
	}
}

func TestSubmit_TrimsAndDisables(t *testing.T) {
	c := NewController()
	c.SetName("  Ann Lee  ")
	c.SetText("\tlisten \n")

	sub := mustSubmit(t, c)

	want := anagram.Request{UserName: "Ann Lee", InputText: "listen"}
	if diff := cmp.Diff(want, sub.Request); diff != "" {
		t.Errorf("Request mismatch (-want +got):\n%s", diff)
	}
	if sub.Ticket == 0 {
		t.Error("Ticket should be non-zero")
	}
	if c.SubmitState() != Submitting {
		t.Errorf("SubmitState() = %v, want submitting", c.SubmitState())
	}
	if c.SubmitEnabled() {
		t.Error("submit should be disabled while submitting")
	}
	if c.SubmitLabel() != BusyLabel {
		t.Errorf("SubmitLabel() = %q, want %q", c.SubmitLabel(), BusyLabel)
	}
}

func TestSubmit_NoDuplicateWhileInFlight(t *testing.T) {
	c := filledController(t)
	mustSubmit(t, c)

	// Typing during the request must not re-enable the control
	c.SetText("abcd")
	if c.SubmitEnabled() {
		t.Error("submit should stay disabled while a request is in flight")
	}
	if _, ok := c.Submit(); ok {
		t.Error("second Submit() should be rejected while in flight")
	}
}

func TestComplete_Success(t *testing.T) {
	c := filledController(t)
	sub := mustSubmit(t, c)

	outcome := c.Complete(sub.Ticket, &anagram.Response{Anagrams: []string{"bca", "cab"}}, nil)

	if outcome != OutcomeResults {
		t.Errorf("Complete() = %v, want results", outcome)
	}
	if c.View() != ResultsVisible {
		t.Errorf("View() = %v, want results", c.View())
	}
	if diff := cmp.Diff([]string{"bca", "cab"}, c.Results()); diff != "" {
		t.Errorf("Results mismatch (-want +got):\n%s", diff)
	}
	if c.SubmitLabel() != SubmitLabel {
		t.Errorf("SubmitLabel() = %q, want %q", c.SubmitLabel(), SubmitLabel)
	}
	if c.SubmitState() != Success {
		t.Errorf("SubmitState() = %v, want success", c.SubmitState())
	}
}

func TestComplete_EmptyList(t *testing.T) {
	c := filledController(t)
	sub := mustSubmit(t, c)

	if outcome := c.Complete(sub.Ticket, &anagram.Response{Anagrams: []string{}}, nil); outcome != OutcomeResults {
		t.Fatalf("Complete() = %v, want results", outcome)
	}
	if c.View() != ResultsVisible || len(c.Results()) != 0 {
		t.Errorf("want results view with no items, got %v with %v", c.View(), c.Results())
	}
}

func TestComplete_ServerDetail(t *testing.T) {
	c := filledController(t)
	sub := mustSubmit(t, c)

	outcome := c.Complete(sub.Ticket, nil, anagram.NewHTTPError(400, "bad name"))

	if outcome != OutcomeAlert {
		t.Errorf("Complete() = %v, want alert", outcome)
	}
	if c.Alert() != "Error: bad name" {
		t.Errorf("Alert() = %q, want %q", c.Alert(), "Error: bad name")
	}
	if c.View() != FormVisible {
		t.Errorf("View() = %v, want form", c.View())
	}
	if c.Name() != "Ann Lee" || c.Text() != "abc" {
		t.Errorf("fields should be intact, got %q / %q", c.Name(), c.Text())
	}
	if c.SubmitState() != Failure {
		t.Errorf("SubmitState() = %v, want failure", c.SubmitState())
	}
}

func TestComplete_NetworkFailure(t *testing.T) {
	c := filledController(t)
	sub := mustSubmit(t, c)

	c.Complete(sub.Ticket, nil, anagram.NewNetworkError("POST request failed", errors.New("connection reset")))

	if c.Alert() != "Error: Something went wrong." {
		t.Errorf("Alert() = %q, want generic fallback", c.Alert())
	}
	if !c.SubmitEnabled() {
		t.Error("submit should be re-enabled for still-valid input")
	}
	if c.SubmitLabel() != SubmitLabel {
		t.Errorf("SubmitLabel() = %q, want %q", c.SubmitLabel(), SubmitLabel)
	}

	c.DismissAlert()
	if c.Alert() != "" {
		t.Errorf("Alert() after dismiss = %q, want empty", c.Alert())
	}
}

func TestComplete_NilResponseIsFailure(t *testing.T) {
	c := filledController(t)
	sub := mustSubmit(t, c)

	if outcome := c.Complete(sub.Ticket, nil, nil); outcome != OutcomeAlert {
		t.Errorf("Complete() = %v, want alert", outcome)
	}
	if c.View() != FormVisible {
		t.Errorf("View() = %v, want form", c.View())
	}
}

func TestComplete_StaleAfterReset(t *testing.T) {
	c := filledController(t)
	sub := mustSubmit(t, c)

	c.Reset()
	outcome := c.Complete(sub.Ticket, &anagram.Response{Anagrams: []string{"bca"}}, nil)

	if outcome != OutcomeStale {
		t.Errorf("Complete() = %v, want stale", outcome)
	}
	if c.View() != FormVisible {
		t.Errorf("View() = %v, stale result must not switch views", c.View())
	}
	if len(c.Results()) != 0 {
		t.Errorf("Results() = %v, want empty", c.Results())
	}
}

func TestComplete_StaleTicket(t *testing.T) {
	c := filledController(t)
	first := mustSubmit(t, c)
	c.Complete(first.Ticket, nil, errors.New("boom"))
	c.DismissAlert()

	second := mustSubmit(t, c)
	if second.Ticket == first.Ticket {
		t.Fatal("tickets should be unique per submission")
	}

	if outcome := c.Complete(first.Ticket, &anagram.Response{Anagrams: []string{"x"}}, nil); outcome != OutcomeStale {
		t.Errorf("Complete(old ticket) = %v, want stale", outcome)
	}
	if !c.Pending() {
		t.Error("current submission should still be pending")
	}
	if outcome := c.Complete(second.Ticket, &anagram.Response{Anagrams: []string{"y"}}, nil); outcome != OutcomeResults {
		t.Errorf("Complete(current ticket) = %v, want results", outcome)
	}
}

func TestReset(t *testing.T) {
	c := filledController(t)

	c.Reset()

	if c.Name() != "" || c.Text() != "" {
		t.Errorf("fields should be cleared, got %q / %q", c.Name(), c.Text())
	}
	if c.NameError() != "" || c.TextError() != "" {
		t.Error("errors should be cleared")
	}
	if c.SubmitEnabled() {
		t.Error("submit should be disabled after reset")
	}

	// Errors shown before the reset are cleared too
	c.SetName("Al")
	c.SetText("")
	c.Reset()
	if c.NameError() != "" || c.TextError() != "" {
		t.Error("errors should be cleared after reset")
	}

	// Next input event re-validates
	c.SetName("Ann")
	if c.TextError() != validation.MsgTextEmpty {
		t.Errorf("TextError() = %q, want %q", c.TextError(), validation.MsgTextEmpty)
	}
}

func TestReturnToForm(t *testing.T) {
	c := filledController(t)
	sub := mustSubmit(t, c)
	c.Complete(sub.Ticket, &anagram.Response{Anagrams: []string{"bca"}}, nil)

	// Input events are ignored while results are visible
	c.SetName("Someone Else")
	if c.Name() != "Ann Lee" {
		t.Errorf("Name() = %q, results view must not accept input", c.Name())
	}

	c.ReturnToForm()

	if c.View() != FormVisible {
		t.Errorf("View() = %v, want form", c.View())
	}
	if c.Name() != "" || c.Text() != "" {
		t.Errorf("fields should be cleared, got %q / %q", c.Name(), c.Text())
	}
	if c.SubmitEnabled() {
		t.Error("submit should be disabled after returning to the form")
	}
	if c.SubmitState() != Idle {
		t.Errorf("SubmitState() = %v, want idle", c.SubmitState())
	}
	if len(c.Results()) != 0 {
		t.Errorf("Results() = %v, want empty", c.Results())
	}
}

func TestNavigationGuards(t *testing.T) {
	c := filledController(t)

	// Return-to-form is only available from the results view
	c.ReturnToForm()
	if c.Name() != "Ann Lee" {
		t.Error("ReturnToForm() on the form view should do nothing")
	}

	sub := mustSubmit(t, c)
	c.Complete(sub.Ticket, &anagram.Response{Anagrams: []string{"bca"}}, nil)

	// Reset is only available from the form view
	c.Reset()
	if c.View() != ResultsVisible || len(c.Results()) != 1 {
		t.Error("Reset() on the results view should do nothing")
	}
	if _, ok := c.Submit(); ok {
		t.Error("Submit() should be rejected on the results view")
	}
}

func TestResultsReturnsCopy(t *testing.T) {
	c := filledController(t)
	sub := mustSubmit(t, c)
	c.Complete(sub.Ticket, &anagram.Response{Anagrams: []string{"bca", "cab"}}, nil)

	got := c.Results()
	got[0] = "mutated"

	if c.Results()[0] != "bca" {
		t.Error("Results() should return a copy")
	}
}

func TestStateStrings(t *testing.T) {
	if FormVisible.String() != "form" || ResultsVisible.String() != "results" {
		t.Error("unexpected ViewState names")
	}
	if Submitting.String() != "submitting" || SubmitState(9).String() != "SubmitState(9)" {
		t.Error("unexpected SubmitState names")
	}
	if OutcomeStale.String() != "stale" || OutcomeAlert.String() != "alert" {
		t.Error("unexpected Outcome names")
	}
}
