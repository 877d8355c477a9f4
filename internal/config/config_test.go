package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.SourceLineMax != DefaultSourceLineMax {
		t.Errorf("expected SourceLineMax %d, got %d", DefaultSourceLineMax, cfg.SourceLineMax)
	}
	if cfg.EnvFile != DefaultEnvFile {
		t.Errorf("expected EnvFile %s, got %s", DefaultEnvFile, cfg.EnvFile)
	}
	if cfg.Quiet || cfg.NoColor || cfg.Progress || cfg.Interactive {
		t.Errorf("expected console switches off by default, got %+v", cfg)
	}
}

func TestConfig_LoadEnv(t *testing.T) {
	t.Run("missing file keeps defaults", func(t *testing.T) {
		cfg := New()
		if err := cfg.LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SourceLineMax != DefaultSourceLineMax {
			t.Errorf("expected %d, got %d", DefaultSourceLineMax, cfg.SourceLineMax)
		}
	})

	t.Run("file values", func(t *testing.T) {
		path := writeEnv(t, "TALLY_SOURCE_MAX=80\nTALLY_QUIET=true\nTALLY_NO_COLOR=1\n")
		cfg := New()
		if err := cfg.LoadEnv(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SourceLineMax != 80 {
			t.Errorf("expected 80, got %d", cfg.SourceLineMax)
		}
		if !cfg.Quiet || !cfg.NoColor || cfg.Progress {
			t.Errorf("unexpected switches %+v", cfg)
		}
	})

	t.Run("process environment wins", func(t *testing.T) {
		path := writeEnv(t, "TALLY_SOURCE_MAX=80\n")
		t.Setenv(EnvSourceLineMax, "120")
		cfg := New()
		if err := cfg.LoadEnv(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SourceLineMax != 120 {
			t.Errorf("expected 120, got %d", cfg.SourceLineMax)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, content := range []string{"TALLY_SOURCE_MAX=zero\n", "TALLY_SOURCE_MAX=-1\n", "TALLY_QUIET=maybe\n"} {
			cfg := New()
			if err := cfg.LoadEnv(writeEnv(t, content)); err == nil {
				t.Errorf("expected error for %q", content)
			}
		}
	})
}

func TestLoad_FlagsOverride(t *testing.T) {
	path := writeEnv(t, "TALLY_SOURCE_MAX=80\n")

	tests := []struct {
		name     string
		flags    Flags
		expected int
		view     bool
	}{
		{name: "env value", flags: Flags{EnvFile: path}, expected: 80},
		{name: "flag value", flags: Flags{EnvFile: path, MaxLine: 40}, expected: 40},
		{name: "view flag", flags: Flags{EnvFile: path, View: true}, expected: 80, view: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.flags)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.SourceLineMax != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, cfg.SourceLineMax)
			}
			if cfg.Interactive != tt.view {
				t.Errorf("expected Interactive %v, got %v", tt.view, cfg.Interactive)
			}
			if cfg.EnvFile != path {
				t.Errorf("expected EnvFile %s, got %s", path, cfg.EnvFile)
			}
		})
	}
}

func TestConfig_LoadFile(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "tally.yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}
		return path
	}

	t.Run("missing file keeps defaults", func(t *testing.T) {
		cfg := New()
		if err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SourceLineMax != DefaultSourceLineMax || cfg.Quiet {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("values applied", func(t *testing.T) {
		cfg := New()
		path := write(t, "source_max: 64\nquiet: true\nview: true\n")
		if err := cfg.LoadFile(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SourceLineMax != 64 {
			t.Errorf("expected 64, got %d", cfg.SourceLineMax)
		}
		if !cfg.Quiet || !cfg.Interactive {
			t.Errorf("expected Quiet and Interactive set, got %+v", cfg)
		}
		if cfg.NoColor || cfg.Progress {
			t.Errorf("expected unset keys to stay off, got %+v", cfg)
		}
	})

	errorCases := []struct {
		name    string
		content string
	}{
		{name: "unknown key", content: "colour: false\n"},
		{name: "non-positive max", content: "source_max: 0\n"},
		{name: "wrong type", content: "quiet: loud\n"},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			if err := New().LoadFile(write(t, tt.content)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "tally.yaml")
	if err := os.WriteFile(yamlPath, []byte("source_max: 50\nprogress: true\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	envPath := writeEnv(t, "TALLY_SOURCE_MAX=70\n")

	cfg, err := Load(Flags{EnvFile: envPath, ConfigFile: yamlPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SourceLineMax != 70 {
		t.Errorf("expected env to win over file, got %d", cfg.SourceLineMax)
	}
	if !cfg.Progress {
		t.Error("expected Progress from the config file")
	}
	if cfg.ConfigFile != yamlPath {
		t.Errorf("expected ConfigFile %s, got %s", yamlPath, cfg.ConfigFile)
	}
}
