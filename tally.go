package tally

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tally/internal/assert"
	"tally/internal/cli/commands"
	"tally/internal/config"
	"tally/internal/domain"
	"tally/internal/execution"
	"tally/internal/ui"
)

type (
	// Session registers, runs and reports one set of tests
	Session = execution.Session
	// T is handed to every test body and records its assertions
	T = assert.T
	// Config controls narration and reporting
	Config = config.Config
	// Summary is the outcome of a run
	Summary = domain.RunSummary
	// FailureReport describes one failed assertion
	FailureReport = domain.FailureReport
)

var (
	ErrInvalidName        = domain.ErrInvalidName
	ErrDuplicateTest      = domain.ErrDuplicateTest
	ErrUnknownTest        = domain.ErrUnknownTest
	ErrNotReentrant       = execution.ErrNotReentrant
	ErrRegistrationClosed = execution.ErrRegistrationClosed
	ErrAssertionsFailed   = commands.ErrAssertionsFailed
)

// Version is reported by binaries built with Main
var Version = "dev"

// DefaultConfig returns the configuration used by New
func DefaultConfig() *Config {
	return config.New()
}

// New creates a session narrating to stdout with the default configuration
func New() *Session {
	return NewWithConfig(DefaultConfig(), nil)
}

// NewWithConfig creates a session narrating to out, or stdout if out is nil
func NewWithConfig(cfg *Config, out io.Writer) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return execution.NewSession(cfg, ui.NewConsole(cfg, out))
}

// Main runs the command line of a test binary whose tests are registered
// by setup, and exits non-zero on any error or failed assertion.
func Main(setup func(s *Session) error) {
	rootCmd := commands.NewRootCommand(filepath.Base(os.Args[0]), Version, setup)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
