package execution

import (
	"time"

	"tally/internal/registry"
)

// Executor runs the registered tests and returns how long that took
type Executor interface {
	Execute(tests *registry.Registry) time.Duration
}
