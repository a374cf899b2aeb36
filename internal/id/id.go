package id

import "github.com/google/uuid"

// NewSessionID returns a random identifier for a quiz session.
func NewSessionID() string {
	return uuid.NewString()
}
