package main

import (
	"fmt"
	"os"

	"tally/internal/cli/commands"
)

var version = "dev"

func main() {
	rootCmd := commands.NewRootCommand("tally", version, registerSamples)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
