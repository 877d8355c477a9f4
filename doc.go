// Package tally is a small unit-test harness for programs that want to
// carry their own tests.
//
// Tests are registered on a Session as a group and a test name, run
// sequentially in registration order, and every failed assertion is
// reported with the test name, the line number and the literal source
// line that failed:
//
//	s := tally.New()
//	s.Register("math", "add", func(t *tally.T) {
//		t.ExpectEqualInt(4, add(2, 2))
//	})
//	summary, err := s.Start()
//
// A Session is started once; Start tears it down before returning.
// Main wraps a setup function into a command line with run and list
// commands.
package tally
