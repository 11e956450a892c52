package form

import "fmt"

// ViewState identifies which screen is visible
type ViewState int

const (
	// FormVisible shows the input fields
	FormVisible ViewState = iota
	// ResultsVisible shows the generated anagrams
	ResultsVisible
)

// String returns the view name used in logs
func (v ViewState) String() string {
	switch v {
	case FormVisible:
		return "form"
	case ResultsVisible:
		return "results"
	default:
		return fmt.Sprintf("ViewState(%d)", int(v))
	}
}

// SubmitState tracks the submission state machine
type SubmitState int

const (
	// Idle means no submission has happened since the last reset
	Idle SubmitState = iota
	// Submitting means a request is in flight
	Submitting
	// Success means the last submission produced results
	Success
	// Failure means the last submission raised an alert
	Failure
)

// String returns the state name used in logs
func (s SubmitState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("SubmitState(%d)", int(s))
	}
}

// Outcome reports what Complete did with a submission result
type Outcome int

const (
	// OutcomeStale means the result belonged to an abandoned submission
	OutcomeStale Outcome = iota
	// OutcomeResults means the results view is now showing
	OutcomeResults
	// OutcomeAlert means an alert is pending and the form stays visible
	OutcomeAlert
)

// String returns the outcome name used in logs
func (o Outcome) String() string {
	switch o {
	case OutcomeStale:
		return "stale"
	case OutcomeResults:
		return "results"
	case OutcomeAlert:
		return "alert"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Submit control labels
const (
	SubmitLabel = "Generate"
	BusyLabel   = "Generating..."
)
