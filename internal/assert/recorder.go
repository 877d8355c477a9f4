// Package assert records assertion outcomes against their owning test and
// keeps a report of every failed assertion.
package assert

import (
	"fmt"

	"tally/internal/domain"
	"tally/internal/source"
	"tally/internal/store"
)

// Assertion kinds as narrated on the console.
const (
	KindTrue     = "EXPECT TRUE"
	KindFalse    = "EXPECT FALSE"
	KindEqualInt = "EXPECT EQ INT"
	KindEqualStr = "EXPECT EQ STR"
	KindEqual    = "EXPECT EQ"
	KindNoError  = "EXPECT NO ERROR"
)

// Notifier is told about every assertion outcome as it happens
type Notifier interface {
	Passed(test, kind string)
	Failed(report domain.FailureReport)
	SourceUnavailable(loc domain.Location, err error)
}

// Outcomes counts failed assertions per test
type Outcomes interface {
	RecordOutcome(name string, passed bool) error
}

// Assertion is a single evaluated check
type Assertion struct {
	Kind     string
	Passed   bool
	Test     string
	Location domain.Location
	Message  string
}

// ContractError is raised, as a panic, when an assertion cannot be
// attributed to a registered test or cannot be stored.  The session
// recovers it and aborts the run.
type ContractError struct {
	Test     string
	Location domain.Location
	Err      error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: assertion in %q: %v", e.Location, e.Test, e.Err)
}

func (e *ContractError) Unwrap() error { return e.Err }

// Recorder evaluates assertions for a session
type Recorder struct {
	outcomes  Outcomes
	reports   *store.Ordered[domain.FailureReport]
	locator   source.Locator
	notifier  Notifier
	maxLength int
}

// NewRecorder creates a new Recorder appending failures to reports.  A
// maxLength below 1 falls back to source.DefaultMaxLength.
func NewRecorder(
	outcomes Outcomes,
	reports *store.Ordered[domain.FailureReport],
	locator source.Locator,
	notifier Notifier,
	maxLength int,
) *Recorder {
	if maxLength < 1 {
		maxLength = source.DefaultMaxLength
	}
	return &Recorder{
		outcomes:  outcomes,
		reports:   reports,
		locator:   locator,
		notifier:  notifier,
		maxLength: maxLength,
	}
}

// ExpectTrue records cond for test at the given location.
func (r *Recorder) ExpectTrue(cond bool, test, file string, line int) bool {
	return r.Record(Assertion{
		Kind:     KindTrue,
		Passed:   cond,
		Test:     test,
		Location: domain.Location{File: file, Line: line},
	})
}

// Record notifies about a and counts it against its test.  A failed
// assertion is also appended to the failure reports together with the text
// of its source line.  Record panics with a *ContractError if the test is
// not registered.
func (r *Recorder) Record(a Assertion) bool {
	if a.Passed {
		r.notifier.Passed(a.Test, a.Kind)
		r.count(a)
		return true
	}

	report := domain.FailureReport{
		TestName: a.Test,
		FilePath: a.Location.File,
		Line:     a.Location.Line,
		Kind:     a.Kind,
		Message:  a.Message,
	}
	text, err := r.locator.Line(a.Location.File, a.Location.Line, r.maxLength)
	if err != nil {
		r.notifier.SourceUnavailable(a.Location, err)
		text = ""
	}
	report.SourceText = text

	r.notifier.Failed(report)
	r.count(a)
	if _, err := r.reports.Append(report); err != nil {
		panic(&ContractError{Test: a.Test, Location: a.Location, Err: err})
	}
	return false
}

func (r *Recorder) count(a Assertion) {
	if err := r.outcomes.RecordOutcome(a.Test, a.Passed); err != nil {
		panic(&ContractError{Test: a.Test, Location: a.Location, Err: err})
	}
}
