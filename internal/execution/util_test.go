package execution

import (
	"io"
	"testing"

	"tally/internal/assert"
	"tally/internal/config"
	"tally/internal/ui"
)

func newConsole(cfg *config.Config, out io.Writer) *ui.Console {
	return ui.NewConsole(cfg, out)
}

func mustRegister(t *testing.T, s *Session, group, name string, body func(*assert.T)) {
	t.Helper()
	if err := s.Register(group, name, body); err != nil {
		t.Fatalf("failed to register %s_%s: %v", group, name, err)
	}
}
