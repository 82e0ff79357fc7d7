package ports

import (
	"context"
	"time"

	"github.com/elegance/timesheet-system/internal/core/domain"
)

// RecordRepository defines persistence operations over the record list.
// The list is held as a single blob and rewritten whole on every mutation.
type RecordRepository interface {
	// GetAll returns the full persisted list, most-recent-first. An absent or
	// unparseable blob reads as an empty list; GetAll never fails.
	GetAll(ctx context.Context) []domain.TimeRecord
	// Add prepends the record and persists the whole list.
	Add(ctx context.Context, record domain.TimeRecord) error
	// Update replaces the record with a matching id. Unknown id is a no-op.
	Update(ctx context.Context, record domain.TimeRecord) error
	// Delete removes the record with a matching id. Unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}

// SessionMarkerRepository persists the single in-progress-session marker
// used to resume a running session across a restart.
type SessionMarkerRepository interface {
	// Get returns the marked start instant. ok is false when the marker is
	// absent or unreadable.
	Get(ctx context.Context) (start time.Time, ok bool)
	Set(ctx context.Context, start time.Time) error
	Clear(ctx context.Context) error
}

// UserRepository persists the logged-in user blob.
type UserRepository interface {
	Get(ctx context.Context) (*domain.User, bool)
	Save(ctx context.Context, user *domain.User) error
	Clear(ctx context.Context) error
}
