package ui

import "tally/internal/domain"

// Viewer displays failure reports interactively
type Viewer interface {
	View(failures []domain.FailureReport) error
}
