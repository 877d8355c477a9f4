package commands

import (
	"tally/internal/cli"
	"tally/internal/config"
	"tally/internal/execution"

	"github.com/spf13/cobra"
)

// Setup registers the tests of a binary into a fresh session
type Setup func(s *execution.Session) error

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, setup Setup) *Commands {
	return &Commands{
		Run:  NewRunCommand(cfg, setup),
		List: NewListCommand(cfg, setup),
	}
}

// NewRootCommand creates the root command of a test binary with the run
// and list commands registered.
func NewRootCommand(use, version string, setup Setup) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           use,
		Short:         "Run registered unit tests",
		Long:          `Runs the unit tests registered by this binary in registration order and reports every failed assertion with the source line that failed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg := config.New()
	var flags cli.Flags
	NewCommands(cfg, setup).Register(rootCmd, &flags, cfg)
	return rootCmd
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Update config with env and flags after parsing
	loadConfig := func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run all registered tests",
		Long:    "Run every registered test in registration order and print the failed assertions",
		RunE:    c.Run.Execute,
		PreRunE: loadConfig,
	}
	runCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Only print the report, not every assertion")
	runCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while tests run (terminal only)")
	runCmd.Flags().BoolVar(&flags.View, "view", false, "Browse the failed assertions interactively before teardown")
	runCmd.Flags().IntVar(&flags.MaxLine, "max-line", 0, "Maximum characters of a failing source line to report (default 200)")
	runCmd.Flags().StringVar(&flags.EnvFile, "env", config.DefaultEnvFile, "Env file with TALLY_* settings")
	runCmd.Flags().StringVar(&flags.ConfigFile, "config", config.DefaultConfigFile, "YAML settings file")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered tests",
		Long:    "List the registered tests grouped by test group without running them",
		RunE:    c.List.Execute,
		PreRunE: loadConfig,
	}
	listCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	listCmd.Flags().StringVar(&flags.EnvFile, "env", config.DefaultEnvFile, "Env file with TALLY_* settings")
	listCmd.Flags().StringVar(&flags.ConfigFile, "config", config.DefaultConfigFile, "YAML settings file")
	rootCmd.AddCommand(listCmd)
}
