package domain

import "errors"

var (
	// ErrInvalidName is returned for empty names or names containing the delimiter
	ErrInvalidName = errors.New("invalid test name")
	// ErrDuplicateTest is returned when a qualified name is registered twice
	ErrDuplicateTest = errors.New("duplicate test name")
	// ErrUnknownTest is returned when an outcome names an unregistered test
	ErrUnknownTest = errors.New("unknown test")
)
