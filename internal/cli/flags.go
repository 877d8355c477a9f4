package cli

import "tally/internal/config"

// Flags holds command-line flags
type Flags struct {
	Quiet      bool
	NoColor    bool
	Progress   bool
	View       bool
	MaxLine    int
	EnvFile    string
	ConfigFile string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Quiet:      f.Quiet,
		NoColor:    f.NoColor,
		Progress:   f.Progress,
		View:       f.View,
		MaxLine:    f.MaxLine,
		EnvFile:    f.EnvFile,
		ConfigFile: f.ConfigFile,
	}
}
