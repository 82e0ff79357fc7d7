package domain

import (
	"errors"
	"fmt"
	"time"
)

// DefaultDescription is assigned to every record created by stopping a session.
const DefaultDescription = "Work Session"

var ErrRecordNotFound = errors.New("record not found")
var ErrEndBeforeStart = errors.New("end time cannot be before start time")
var ErrInvalidInstant = errors.New("invalid time value")
var ErrSessionRunning = errors.New("a session is already running")
var ErrSessionIdle = errors.New("no session is running")
var ErrDeleteNotConfirmed = errors.New("delete not confirmed")

// TimeRecord is a completed work session. The JSON field names match the
// persisted blob layout, which predates this service.
type TimeRecord struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	DurationMs  int64     `json:"duration"`
	Description string    `json:"description"`
}

// NewTimeRecord builds a record for the interval [start, end] with the
// duration derived from the instants. A zero-length interval is valid.
func NewTimeRecord(id string, start, end time.Time) TimeRecord {
	return TimeRecord{
		ID:          id,
		StartTime:   start,
		EndTime:     end,
		DurationMs:  DurationBetween(start, end),
		Description: DefaultDescription,
	}
}

// WithInterval returns a copy of r spanning the new interval, duration
// recomputed. ID and description are preserved; r is not mutated.
func (r TimeRecord) WithInterval(start, end time.Time) TimeRecord {
	r.StartTime = start
	r.EndTime = end
	r.DurationMs = DurationBetween(start, end)
	return r
}

// DurationBetween returns the difference between two instants in milliseconds.
func DurationBetween(start, end time.Time) int64 {
	return end.Sub(start).Milliseconds()
}

// FormatDurationMillis renders a millisecond count as HH:MM:SS using floor
// division. Hours are not wrapped at 24.
func FormatDurationMillis(ms int64) string {
	secs := (ms / 1000) % 60
	mins := (ms / (1000 * 60)) % 60
	hours := ms / (1000 * 60 * 60)
	return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
}
