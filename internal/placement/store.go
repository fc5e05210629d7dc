// Package placement holds each student's mutable placement session and the
// operations the dashboard performs on it.
package placement

import (
	"context"
	"errors"

	"placement-workers/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
)

// Store persists sessions. Update runs fn against the current value and
// saves the result atomically; if fn returns an error nothing is written.
type Store interface {
	Create(ctx context.Context, s *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Update(ctx context.Context, id string, fn func(*models.Session) error) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}
