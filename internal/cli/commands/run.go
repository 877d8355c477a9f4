package commands

import (
	"errors"
	"fmt"

	"tally/internal/config"
	"tally/internal/execution"
	"tally/internal/ui"

	"github.com/spf13/cobra"
)

// ErrAssertionsFailed is returned by the run command when any assertion
// failed
var ErrAssertionsFailed = errors.New("assertions failed")

// RunCommand handles the run command
type RunCommand struct {
	config *config.Config
	setup  Setup
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, setup Setup) *RunCommand {
	return &RunCommand{
		config: cfg,
		setup:  setup,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	session := execution.NewSession(rc.config, ui.NewConsole(rc.config, cmd.OutOrStdout()))
	if err := rc.setup(session); err != nil {
		return fmt.Errorf("register tests: %w", err)
	}

	summary, err := session.Start()
	if err != nil {
		return err
	}
	if !summary.Passed() {
		return fmt.Errorf("%w: %d", ErrAssertionsFailed, summary.TotalFailed)
	}
	return nil
}
