package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateRecordRequest carries the new interval for an existing record. The
// instants are strings so the server controls parsing (RFC3339 or a zoneless
// local datetime).
type updateRecordRequest struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time"   validate:"required"`
}

// --- Response types ---
// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type userResponse struct {
	Email string `json:"email"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type recordResponse struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	DurationMs  int64     `json:"duration_ms"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
}

type recordsSummaryResponse struct {
	Count     int    `json:"count"`
	TotalMs   int64  `json:"total_ms"`
	TotalTime string `json:"total_time"`
}

type listRecordsResponse struct {
	Data    []recordResponse       `json:"data"`
	Summary recordsSummaryResponse `json:"summary"`
}

type timerStatusResponse struct {
	Running   bool       `json:"running"`
	StartTime *time.Time `json:"start_time,omitempty"`
	ElapsedMs int64      `json:"elapsed_ms"`
	Elapsed   string     `json:"elapsed"`
}

type startTimerResponse struct {
	Running   bool      `json:"running"`
	StartTime time.Time `json:"start_time"`
}
