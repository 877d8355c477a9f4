package domain

import (
	"fmt"
	"strings"
)

// NameDelimiter joins a group and a test name into a qualified test name.
const NameDelimiter = "_"

// Test represents a registered test
type Test struct {
	Name     string // Qualified name, group_test
	Entry    func() // Zero-argument entry point
	Failures int    // Failed assertions recorded so far
}

// Passed reports whether no assertion of the test has failed
func (t Test) Passed() bool {
	return t.Failures == 0
}

// ValidateNamePart checks a group or test name for use in a qualified name
func ValidateNamePart(part string) error {
	if part == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.Contains(part, NameDelimiter) {
		return fmt.Errorf("%w: %q contains reserved delimiter %q", ErrInvalidName, part, NameDelimiter)
	}
	return nil
}

// QualifiedName validates group and test and joins them.
func QualifiedName(group, test string) (string, error) {
	if err := ValidateNamePart(group); err != nil {
		return "", fmt.Errorf("group: %w", err)
	}
	if err := ValidateNamePart(test); err != nil {
		return "", fmt.Errorf("test: %w", err)
	}
	return group + NameDelimiter + test, nil
}

// ValidateQualifiedName checks that name is exactly two valid parts joined
// by the delimiter.
func ValidateQualifiedName(name string) error {
	group, test, ok := SplitName(name)
	if !ok {
		return fmt.Errorf("%w: %q is not of the form group%stest", ErrInvalidName, name, NameDelimiter)
	}
	_, err := QualifiedName(group, test)
	return err
}

// SplitName splits a qualified name into its group and test parts.
func SplitName(name string) (group, test string, ok bool) {
	return strings.Cut(name, NameDelimiter)
}
