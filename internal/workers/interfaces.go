// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// SessionClock is the part of the session the watcher needs.
type SessionClock interface {
	// ExpiresAt returns the token expiry; ok is false when the token is
	// missing or carries no expiry.
	ExpiresAt(ctx context.Context) (time.Time, bool)
	// Clear removes the token and the user summary.
	Clear(ctx context.Context) error
}
