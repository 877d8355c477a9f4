package config

const (
	// DefaultSourceLineMax bounds the excerpt of a failing source line
	DefaultSourceLineMax = 200
	// DefaultEnvFile is read for TALLY_* settings when present
	DefaultEnvFile = ".env"
	// DefaultConfigFile is read for settings when present
	DefaultConfigFile = "tally.yaml"
)

// Environment variables read by LoadEnv
const (
	EnvSourceLineMax = "TALLY_SOURCE_MAX"
	EnvQuiet         = "TALLY_QUIET"
	EnvNoColor       = "TALLY_NO_COLOR"
	EnvProgress      = "TALLY_PROGRESS"
)
