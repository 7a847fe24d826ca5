package utils

import "github.com/google/uuid"

// NewRequestID returns a time-ordered UUIDv7 so request ids sort by arrival
// in logs. A random v4 is used when v7 cannot be produced.
func NewRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
