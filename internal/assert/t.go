package assert

import (
	"fmt"
	"runtime"

	"github.com/google/go-cmp/cmp"

	"tally/internal/domain"
)

// T is handed to a test body.  Its assertions report the caller's file and
// line so a failure can be shown with the code that failed.
type T struct {
	name     string
	recorder *Recorder
}

// NewT creates the handle for the test registered under name.
func NewT(name string, recorder *Recorder) *T {
	return &T{name: name, recorder: recorder}
}

// Name returns the qualified name of the running test
func (t *T) Name() string { return t.name }

// ExpectTrue fails the assertion if cond is false.
func (t *T) ExpectTrue(cond bool) bool {
	return t.check(KindTrue, cond, "")
}

// ExpectFalse fails the assertion if cond is true.
func (t *T) ExpectFalse(cond bool) bool {
	return t.check(KindFalse, !cond, "")
}

// ExpectEqualInt fails the assertion if want and got differ.
func (t *T) ExpectEqualInt(want, got int) bool {
	return t.check(KindEqualInt, want == got, fmt.Sprintf("expected %d, got %d", want, got))
}

// ExpectEqualString compares at most the first n bytes of want and got; n
// below 1 compares the whole strings.
func (t *T) ExpectEqualString(want, got string, n int) bool {
	return t.check(KindEqualStr, prefix(want, n) == prefix(got, n),
		fmt.Sprintf("expected %q, got %q", want, got))
}

// ExpectEqual fails the assertion if want and got are not equal as
// determined by cmp.Equal; the failure message carries their diff.
func (t *T) ExpectEqual(want, got any) bool {
	diff := cmp.Diff(want, got)
	return t.check(KindEqual, diff == "", diff)
}

// ExpectNoError fails the assertion if err is not nil.
func (t *T) ExpectNoError(err error) bool {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return t.check(KindNoError, err == nil, msg)
}

// check must be called directly by an exported assertion: it attributes
// the outcome to the assertion's caller.
func (t *T) check(kind string, passed bool, msg string) bool {
	_, file, line, _ := runtime.Caller(2)
	if passed {
		msg = ""
	}
	return t.recorder.Record(Assertion{
		Kind:    kind,
		Passed:  passed,
		Test:    t.name,
		Message: msg,
		Location: domain.Location{
			File: file,
			Line: line,
		},
	})
}

func prefix(s string, n int) string {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
