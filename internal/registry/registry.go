// Package registry holds the tests of a session in registration order.
package registry

import (
	"errors"
	"fmt"
	"iter"

	"tally/internal/domain"
	"tally/internal/store"
)

// Registry maps qualified test names to their records while keeping the
// order in which they were registered.
type Registry struct {
	tests *store.Indexed[string, domain.Test]
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		tests: store.NewIndexed(func(t domain.Test) string { return t.Name }),
	}
}

// Register adds a test under its qualified name with no failures.
func (r *Registry) Register(name string, entry func()) error {
	if err := domain.ValidateQualifiedName(name); err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("%w: %s has no entry point", domain.ErrInvalidName, name)
	}
	_, err := r.tests.Append(domain.Test{Name: name, Entry: entry})
	if errors.Is(err, store.ErrDuplicateKey) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateTest, name)
	}
	return err
}

// RecordOutcome counts a failed assertion against the named test; a passed
// assertion leaves the test untouched.
func (r *Registry) RecordOutcome(name string, passed bool) error {
	if _, ok := r.tests.Lookup(name); !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownTest, name)
	}
	if passed {
		return nil
	}
	return r.tests.UpdateKey(name, func(t *domain.Test) { t.Failures++ })
}

// Lookup returns a copy of the named test
func (r *Registry) Lookup(name string) (domain.Test, bool) {
	return r.tests.Lookup(name)
}

// All yields the tests in registration order
func (r *Registry) All() iter.Seq[domain.Test] {
	return r.tests.All()
}

// Len returns the number of registered tests
func (r *Registry) Len() int { return r.tests.Len() }

// TotalFailures sums the failure counts of all tests.
func (r *Registry) TotalFailures() int {
	total := 0
	for t := range r.tests.All() {
		total += t.Failures
	}
	return total
}

// Teardown drops every test and its entry point.  The registry accepts no
// further registrations or outcomes.
func (r *Registry) Teardown() {
	r.tests.Teardown(func(t *domain.Test) {
		t.Entry = nil
		t.Name = ""
	})
}
