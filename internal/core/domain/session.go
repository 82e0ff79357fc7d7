package domain

import "time"

// Session is the in-progress timed interval. At most one exists at a time;
// only its start instant is persisted (as the resume marker), the rest is
// derived on demand.
type Session struct {
	StartTime time.Time `json:"start_time"`
	Running   bool      `json:"running"`
}
