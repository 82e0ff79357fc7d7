package ports

import (
	"context"
	"time"

	"github.com/elegance/timesheet-system/internal/core/domain"
)

// TimerStatus is the live view of the session timer. ElapsedMs is
// presentation-only: it is recomputed on a fixed tick while Running and is
// always zero when Idle.
type TimerStatus struct {
	Running   bool
	StartTime time.Time
	ElapsedMs int64
}

// TimerService owns the Idle/Running session state machine.
type TimerService interface {
	Status() TimerStatus
	// Start begins a session at the current instant and persists the resume
	// marker. Returns domain.ErrSessionRunning when one is already running,
	// leaving the original start instant unchanged.
	Start(ctx context.Context) (time.Time, error)
	// Stop ends the running session, persists the resulting record, and
	// clears the marker. Returns domain.ErrSessionIdle when no session runs.
	Stop(ctx context.Context) (*domain.TimeRecord, error)
}
