// Package repository stores per-shopper sessions.
package repository

import (
	"context"

	"github.com/pauloargenal/e-commerce-deployed/internal/domain"
)

// SessionRepository provides access to session state. Update serializes
// mutations per session: the callback runs under the session's lock, so
// concurrent requests for the same session apply one at a time.
type SessionRepository interface {
	// Get returns a copy of the session, or ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// GetOrCreate returns a copy of the session, creating it if absent.
	GetOrCreate(ctx context.Context, id string) (*domain.Session, error)

	// Update applies fn to the session (creating it if absent) and returns a
	// copy of the result. If fn returns an error the session is left unchanged.
	Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error)

	// Delete removes the session. Deleting an absent session is a no-op.
	Delete(ctx context.Context, id string) error
}
