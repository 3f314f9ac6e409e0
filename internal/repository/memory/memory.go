// Package memory implements the session repository in process memory.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pauloargenal/e-commerce-deployed/internal/domain"
	"github.com/pauloargenal/e-commerce-deployed/pkg/errors"
)

// entry pairs a session with its own lock so mutations to different sessions
// never contend with each other.
type entry struct {
	mu      sync.Mutex
	session *domain.Session
}

// Repository is an in-memory session store. Callers always receive deep
// copies; the stored session is only touched inside Update callbacks.
type Repository struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// New creates an empty in-memory session repository.
func New() *Repository {
	return &Repository{
		entries: make(map[string]*entry),
	}
}

func (r *Repository) lookup(id string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	return e, ok
}

func (r *Repository) lookupOrCreate(id string) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok {
		return e
	}
	e := &entry{session: domain.NewSession(id)}
	r.entries[id] = e
	return e
}

// Get returns a copy of the session, or ErrNotFound.
func (r *Repository) Get(ctx context.Context, id string) (*domain.Session, error) {
	e, ok := r.lookup(id)
	if !ok {
		return nil, errors.NotFound("session", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone(), nil
}

// GetOrCreate returns a copy of the session, creating it if absent.
func (r *Repository) GetOrCreate(ctx context.Context, id string) (*domain.Session, error) {
	e := r.lookupOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone(), nil
}

// Update applies fn to the session under its lock and returns a copy of the
// result. If fn fails, the session keeps its previous state.
func (r *Repository) Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error) {
	e := r.lookupOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.session.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	working.UpdatedAt = time.Now().UTC()
	e.session = working
	return working.Clone(), nil
}

// Delete removes the session. Deleting an absent session is a no-op.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

// PurgeIdle removes sessions not updated within maxIdle and returns how many
// were dropped.
func (r *Repository) PurgeIdle(maxIdle time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	var purged int
	for id, e := range r.entries {
		e.mu.Lock()
		idle := e.session.UpdatedAt.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(r.entries, id)
			purged++
		}
	}
	return purged
}

// Len returns the number of live sessions.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
