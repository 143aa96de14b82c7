package domain

import (
	"context"
	"errors"
)

// QuestionSource supplies the raw question dump as one complete text blob.
type QuestionSource interface {
	// Name identifies the source in logs and cache keys.
	Name() string
	// Fetch returns the whole dump. Failures are reported as SourceUnavailable.
	Fetch(ctx context.Context) (string, error)
}

// ErrSessionNotFound is returned by a SessionRepository for unknown or expired ids.
var ErrSessionNotFound = errors.New("drill session not found")

// SessionRepository holds live drill sessions in memory.
type SessionRepository interface {
	// Create stores s under id.
	Create(ctx context.Context, id string, s *Session) error
	// Update runs fn against the session with exclusive access.
	Update(ctx context.Context, id string, fn func(s *Session) error) error
	// Delete removes the session. Unknown ids return ErrSessionNotFound.
	Delete(ctx context.Context, id string) error
}
