// Package execution drives a test session: registration, running every
// test, reporting failed assertions and tearing everything down.
package execution

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"tally/internal/assert"
	"tally/internal/config"
	"tally/internal/domain"
	"tally/internal/registry"
	"tally/internal/source"
	"tally/internal/store"
	"tally/internal/ui"
)

// State is the lifecycle phase of a Session
type State int

const (
	Idle State = iota
	Running
	Reporting
	TornDown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Reporting:
		return "reporting"
	case TornDown:
		return "torn down"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	// ErrNotReentrant is returned by Start on a session that already started
	ErrNotReentrant = errors.New("session already started")
	// ErrRegistrationClosed is returned by Register once the session started
	ErrRegistrationClosed = errors.New("registration closed")
)

// Session owns the tests and failure reports of one run.  Sessions are
// independent of each other; a single Session is not safe for concurrent
// use.
type Session struct {
	config    *config.Config
	console   *ui.Console
	formatter *ui.Formatter
	viewer    ui.Viewer
	runner    *Runner
	executor  Executor
	tests     *registry.Registry
	reports   *store.Ordered[domain.FailureReport]
	recorder  *assert.Recorder
	state     State
}

// NewSession creates an idle session narrating through console
func NewSession(cfg *config.Config, console *ui.Console) *Session {
	tests := registry.New()
	reports := store.NewOrdered[domain.FailureReport]()
	runner := NewRunner(console)
	return &Session{
		config:    cfg,
		console:   console,
		formatter: ui.NewFormatter(console),
		viewer:    ui.NewErrorViewer(),
		runner:    runner,
		executor:  runner,
		tests:     tests,
		reports:   reports,
		recorder:  assert.NewRecorder(tests, reports, source.NewFileLocator(), console, cfg.SourceLineMax),
		state:     Idle,
	}
}

// SetViewer replaces the interactive failure viewer
func (s *Session) SetViewer(v ui.Viewer) {
	s.viewer = v
}

// State returns the current lifecycle phase
func (s *Session) State() State { return s.state }

// Register adds body as test name of group.  The test is known as
// group_name; neither part may contain the delimiter.
func (s *Session) Register(group, name string, body func(t *assert.T)) error {
	if s.state != Idle {
		return fmt.Errorf("%w: session is %s", ErrRegistrationClosed, s.state)
	}
	qualified, err := domain.QualifiedName(group, name)
	if err != nil {
		return err
	}
	if body == nil {
		return fmt.Errorf("%w: %s has no body", domain.ErrInvalidName, qualified)
	}
	t := assert.NewT(qualified, s.recorder)
	if err := s.tests.Register(qualified, func() { body(t) }); err != nil {
		return err
	}
	s.console.Registered(qualified)
	return nil
}

// Tests yields the registered tests in registration order; nothing once
// the session is torn down.
func (s *Session) Tests() iter.Seq[domain.Test] { return s.tests.All() }

// Reports yields the failure reports in the order the failures occurred;
// nothing once the session is torn down.
func (s *Session) Reports() iter.Seq[domain.FailureReport] { return s.reports.All() }

// Start runs every test in registration order, prints the report and
// tears the session down.  The returned summary is a copy taken before
// teardown.  A session can be started once.  An assertion naming an
// unregistered test aborts the run with an error; a panicking test is not
// recovered.
func (s *Session) Start() (domain.RunSummary, error) {
	if s.state != Idle {
		return domain.RunSummary{}, fmt.Errorf("%w: session is %s", ErrNotReentrant, s.state)
	}

	s.console.Starting()
	s.state = Running
	defer s.teardown()

	if s.config.Progress && ui.ProgressSupported() {
		s.runner.SetProgress(ui.NewProgressBar(s.tests.Len()))
	}
	duration, err := s.run()
	if err != nil {
		return domain.RunSummary{}, err
	}

	s.state = Reporting
	total := s.tests.TotalFailures()
	s.formatter.PrintReport(total, s.reports.All())
	summary := s.snapshot(total, duration)

	if s.config.Interactive && s.viewer != nil {
		if err := s.viewer.View(summary.Failures); err != nil {
			s.console.Warn("%v", err)
		}
	}
	s.formatter.PrintSummary(summary)
	return summary, nil
}

func (s *Session) run() (duration time.Duration, err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		cerr, ok := v.(*assert.ContractError)
		if !ok {
			panic(v)
		}
		err = fmt.Errorf("run aborted: %w", cerr)
	}()
	return s.executor.Execute(s.tests), nil
}

func (s *Session) snapshot(total int, duration time.Duration) domain.RunSummary {
	summary := domain.RunSummary{
		Failures:    slices.Collect(s.reports.All()),
		TotalFailed: total,
		Duration:    duration,
	}
	for test := range s.tests.All() {
		summary.Tests = append(summary.Tests, domain.TestSummary{
			Name:     test.Name,
			Failures: test.Failures,
		})
	}
	return summary
}

func (s *Session) teardown() {
	s.console.TearingDown()
	s.tests.Teardown()
	s.reports.Teardown(func(r *domain.FailureReport) {
		*r = domain.FailureReport{}
	})
	s.state = TornDown
	s.console.Completed()
}
