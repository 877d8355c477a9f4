package execution

import (
	"time"

	"tally/internal/registry"
	"tally/internal/ui"
)

// Runner invokes test entry points one after another in registration
// order.  A panicking test is not recovered.
type Runner struct {
	console  *ui.Console
	progress *ui.ProgressBar
}

// NewRunner creates a new Runner
func NewRunner(console *ui.Console) *Runner {
	return &Runner{console: console}
}

// SetProgress sets the progress bar updated after each test
func (r *Runner) SetProgress(progress *ui.ProgressBar) {
	r.progress = progress
}

// Execute implements Executor
func (r *Runner) Execute(tests *registry.Registry) time.Duration {
	startTime := time.Now()
	var passed, failed int

	for test := range tests.All() {
		r.console.Running(test.Name)
		test.Entry()

		if after, _ := tests.Lookup(test.Name); after.Passed() {
			passed++
		} else {
			failed++
		}
		if r.progress != nil {
			r.progress.Update(passed, failed)
		}
	}

	r.console.FinishedRunning()
	if r.progress != nil {
		r.progress.Finish()
	}
	return time.Since(startTime)
}
