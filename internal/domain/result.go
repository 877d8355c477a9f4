package domain

import "time"

// TestSummary is a detached copy of a test's outcome
type TestSummary struct {
	Name     string
	Failures int
}

// RunSummary is the outcome of a session, captured before teardown
type RunSummary struct {
	Tests       []TestSummary
	Failures    []FailureReport
	TotalFailed int
	Duration    time.Duration
}

// FailedTests returns how many tests had at least one failed assertion.
func (s RunSummary) FailedTests() int {
	n := 0
	for _, t := range s.Tests {
		if t.Failures > 0 {
			n++
		}
	}
	return n
}

// Passed reports whether the run had no failed assertions
func (s RunSummary) Passed() bool {
	return s.TotalFailed == 0
}
