package components

import "context"

// Component represents a long-running part of the service.
type Component interface {
	// Run blocks until ctx is cancelled or the component fails.
	// A nil error means a clean stop.
	Run(ctx context.Context) error

	// Name returns the component name for logging
	Name() string
}
