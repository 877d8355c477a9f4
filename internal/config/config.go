package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration for a test session
type Config struct {
	// Report settings
	SourceLineMax int

	// Console settings
	Quiet    bool
	NoColor  bool
	Progress bool

	// Open the failure viewer before teardown
	Interactive bool

	// Env file consulted by Load
	EnvFile string

	// YAML settings file consulted by Load
	ConfigFile string

	// Command flags
	Flags Flags
}

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

// fileConfig is the shape of the YAML settings file
type fileConfig struct {
	SourceLineMax *int  `yaml:"source_max"`
	Quiet         *bool `yaml:"quiet"`
	NoColor       *bool `yaml:"no_color"`
	Progress      *bool `yaml:"progress"`
	View          *bool `yaml:"view"`
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		SourceLineMax: DefaultSourceLineMax,
		EnvFile:       DefaultEnvFile,
		ConfigFile:    DefaultConfigFile,
	}
}

// Load creates a config from defaults, the YAML settings file, the env
// file and process environment, then applies flags on top.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if flags.EnvFile != "" {
		cfg.EnvFile = flags.EnvFile
	}
	if flags.ConfigFile != "" {
		cfg.ConfigFile = flags.ConfigFile
	}
	if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
		return nil, err
	}
	if err := cfg.LoadEnv(cfg.EnvFile); err != nil {
		return nil, err
	}
	cfg.ApplyFlags(flags)
	return cfg, nil
}

// LoadFile reads settings from the YAML file at path.  A missing file is
// not an error; keys absent from the file leave the setting unchanged.
func (c *Config) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.UnmarshalStrict(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if fc.SourceLineMax != nil {
		if *fc.SourceLineMax < 1 {
			return fmt.Errorf("parse config file %s: source_max must be positive, got %d", path, *fc.SourceLineMax)
		}
		c.SourceLineMax = *fc.SourceLineMax
	}
	for _, b := range []struct{ src, dst *bool }{
		{fc.Quiet, &c.Quiet},
		{fc.NoColor, &c.NoColor},
		{fc.Progress, &c.Progress},
		{fc.View, &c.Interactive},
	} {
		if b.src != nil {
			*b.dst = *b.src
		}
	}
	return nil
}

// LoadEnv reads TALLY_* settings from the env file at path, if it exists,
// and from the process environment, which wins over the file.
func (c *Config) LoadEnv(path string) error {
	file := map[string]string{}
	if path != "" {
		vals, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read env file %s: %w", path, err)
		}
		if vals != nil {
			file = vals
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}

	if v, ok := lookup(EnvSourceLineMax); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("%s: expected a positive integer, got %q", EnvSourceLineMax, v)
		}
		c.SourceLineMax = n
	}
	for key, dst := range map[string]*bool{
		EnvQuiet:    &c.Quiet,
		EnvNoColor:  &c.NoColor,
		EnvProgress: &c.Progress,
	} {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
	}
	return nil
}

// ApplyFlags overrides settings with the flags that were set
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.MaxLine > 0 {
		c.SourceLineMax = flags.MaxLine
	}
	if flags.Quiet {
		c.Quiet = true
	}
	if flags.NoColor {
		c.NoColor = true
	}
	if flags.Progress {
		c.Progress = true
	}
	if flags.View {
		c.Interactive = true
	}
}
