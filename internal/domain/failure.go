package domain

import "fmt"

// Location is a source position of an assertion
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// FailureReport represents one failed assertion
type FailureReport struct {
	TestName   string
	FilePath   string
	Line       int
	SourceText string // Literal text of the failing line, bounded in length
	Kind       string // Assertion kind, e.g. "EXPECT TRUE"
	Message    string // Optional detail such as a diff
}

// Location returns where the failed assertion was made.
func (f FailureReport) Location() Location {
	return Location{File: f.FilePath, Line: f.Line}
}
