package ports

import (
	"context"

	"github.com/elegance/timesheet-system/internal/core/domain"
)

// EditRecordInput carries the new interval for an existing record. The
// instants arrive as strings (RFC3339 or a local datetime without zone) and
// are parsed by the service.
type EditRecordInput struct {
	ID        string
	StartTime string
	EndTime   string
}

// RecordListResult is the full record list plus the summary total.
type RecordListResult struct {
	Records []domain.TimeRecord
	TotalMs int64
}

// RecordService defines use-case operations over completed records.
type RecordService interface {
	List(ctx context.Context) RecordListResult
	// Edit rewrites the interval of an existing record, recomputing its
	// duration. It rejects end < start with domain.ErrEndBeforeStart before
	// any mutation, and returns the replacement value on success.
	Edit(ctx context.Context, input EditRecordInput) (*domain.TimeRecord, error)
	Delete(ctx context.Context, id string) error
}
