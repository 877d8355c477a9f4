package main

import (
	"tally/internal/assert"
	"tally/internal/execution"
)

// registerSamples registers the sample group.  Several assertions fail on
// purpose so the report has something to show.
func registerSamples(s *execution.Session) error {
	if err := s.Register("sample", "basics", sampleBasics); err != nil {
		return err
	}
	return s.Register("sample", "flags", sampleFlags)
}

func sampleBasics(t *assert.T) {
	one := 1
	t.ExpectTrue(one != 0)
	t.ExpectEqualInt(23, 23)
	t.ExpectEqualInt(23, 22)
	t.ExpectFalse(true)
	t.ExpectFalse(false)
	t.ExpectEqualString("hello", "hello", 6)
	t.ExpectEqualString("hello", "world", 6)
}

func sampleFlags(t *assert.T) {
	for _, v := range []int{1, 1, 1, 0, 1, 0, 0} {
		t.ExpectTrue(v != 0)
	}
}
