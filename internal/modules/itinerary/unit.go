// README: Per-theme unit lifecycle (state machine + typed failure outcomes).
package itinerary

import "fmt"

// UnitState tracks one theme's end-to-end attempt within a request.
type UnitState string

const (
	UnitPending   UnitState = "pending"
	UnitRunning   UnitState = "running"
	UnitSucceeded UnitState = "succeeded"
	UnitFailed    UnitState = "failed"
	UnitResolved  UnitState = "resolved"
)

// unitTransitions is the allowed transition table. Resolved is terminal and
// always carries a structurally valid option, extracted or synthesized.
var unitTransitions = map[UnitState][]UnitState{
	UnitPending:   {UnitRunning},
	UnitRunning:   {UnitSucceeded, UnitFailed},
	UnitSucceeded: {UnitResolved},
	UnitFailed:    {UnitResolved},
	UnitResolved:  {},
}

// CanTransition reports whether a unit may move from one state to another.
func CanTransition(from, to UnitState) bool {
	for _, next := range unitTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// FailureKind classifies why a unit did not produce a usable option.
type FailureKind string

const (
	// FailureUpstream covers network or service errors from the generation call.
	FailureUpstream FailureKind = "upstream-error"
	// FailureTimeout means the unit exceeded its wall-clock budget.
	FailureTimeout FailureKind = "timeout"
	// FailureExtraction means no candidate fragment parsed and validated.
	FailureExtraction FailureKind = "no-valid-candidate"
	// FailureValidation means a document parsed but had the wrong shape.
	FailureValidation FailureKind = "validation"
)

// UnitError is a typed failure outcome. It is a value the orchestrator
// branches on, not an exception crossing the unit boundary.
type UnitError struct {
	Kind FailureKind
	Err  error
}

func (e *UnitError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *UnitError) Unwrap() error { return e.Err }

// Outcome is one resolved unit. Option is always structurally valid;
// Failure is non-nil when the option came from the fallback synthesizer.
type Outcome struct {
	Theme   ThemeDefinition
	Index   int
	State   UnitState
	Option  TripOption
	Failure *UnitError
}
