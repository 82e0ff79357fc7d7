package localstore

import (
	"context"
	"time"
)

// SessionRepository persists the in-progress-session marker: a single
// serialized start instant, absent when the timer is idle.
type SessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Get(_ context.Context) (time.Time, bool) {
	var raw string
	if !r.store.Get(sessionKey, &raw) {
		return time.Time{}, false
	}
	start, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		// Corrupt marker reads as absent; the timer simply stays idle.
		return time.Time{}, false
	}
	return start, true
}

func (r *SessionRepository) Set(_ context.Context, start time.Time) error {
	return r.store.Set(sessionKey, start.Format(time.RFC3339Nano))
}

func (r *SessionRepository) Clear(_ context.Context) error {
	return r.store.Remove(sessionKey)
}
