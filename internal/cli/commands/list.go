package commands

import (
	"fmt"

	"tally/internal/config"
	"tally/internal/execution"
	"tally/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	setup  Setup
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, setup Setup) *ListCommand {
	return &ListCommand{
		config: cfg,
		setup:  setup,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := *lc.config
	cfg.Quiet = true
	console := ui.NewConsole(&cfg, cmd.OutOrStdout())

	session := execution.NewSession(&cfg, console)
	if err := lc.setup(session); err != nil {
		return fmt.Errorf("register tests: %w", err)
	}

	ui.NewFormatter(console).PrintTestList(session.Tests())
	return nil
}
