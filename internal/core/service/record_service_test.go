package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/elegance/timesheet-system/internal/core/domain"
	"github.com/elegance/timesheet-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubRecordRepo struct {
	records  []domain.TimeRecord
	writeErr error // if set, mutations return this error
}

func (r *stubRecordRepo) GetAll(_ context.Context) []domain.TimeRecord {
	out := make([]domain.TimeRecord, len(r.records))
	copy(out, r.records)
	return out
}

func (r *stubRecordRepo) Add(_ context.Context, record domain.TimeRecord) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.records = append([]domain.TimeRecord{record}, r.records...)
	return nil
}

func (r *stubRecordRepo) Update(_ context.Context, record domain.TimeRecord) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	for i := range r.records {
		if r.records[i].ID == record.ID {
			r.records[i] = record
		}
	}
	return nil
}

func (r *stubRecordRepo) Delete(_ context.Context, id string) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	kept := r.records[:0]
	for _, rec := range r.records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	return nil
}

var discardLogger = zerolog.Nop()

func seededRepo() *stubRecordRepo {
	return &stubRecordRepo{records: []domain.TimeRecord{
		domain.NewTimeRecord("rec-2",
			time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 2, 9, 1, 1, 0, time.UTC)), // 61000 ms
		domain.NewTimeRecord("rec-1",
			time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 1, 10, 1, 1, 0, time.UTC)), // 3661000 ms
	}}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestRecordService_List_Totals(t *testing.T) {
	svc := NewRecordService(seededRepo(), discardLogger)

	result := svc.List(context.Background())
	if len(result.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(result.Records))
	}
	if result.TotalMs != 3722000 {
		t.Errorf("expected total 3722000, got %d", result.TotalMs)
	}
	if got := domain.FormatDurationMillis(result.TotalMs); got != "01:02:02" {
		t.Errorf("expected total 01:02:02, got %s", got)
	}
}

func TestRecordService_List_Empty(t *testing.T) {
	svc := NewRecordService(&stubRecordRepo{}, discardLogger)

	result := svc.List(context.Background())
	if len(result.Records) != 0 || result.TotalMs != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

// ---------------------------------------------------------------------------
// Edit
// ---------------------------------------------------------------------------

func TestRecordService_Edit_RecomputesDuration(t *testing.T) {
	repo := seededRepo()
	svc := NewRecordService(repo, discardLogger)

	updated, err := svc.Edit(context.Background(), ports.EditRecordInput{
		ID:        "rec-1",
		StartTime: "2024-01-01T09:00:00Z",
		EndTime:   "2024-01-01T17:30:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.DurationMs != 30600000 {
		t.Errorf("expected duration 30600000, got %d", updated.DurationMs)
	}
	if updated.Description != domain.DefaultDescription {
		t.Errorf("description must be preserved, got %q", updated.Description)
	}

	stored := repo.records[1]
	if stored.DurationMs != 30600000 || !stored.EndTime.Equal(updated.EndTime) {
		t.Errorf("edit not persisted: %+v", stored)
	}
}

func TestRecordService_Edit_EndBeforeStart(t *testing.T) {
	repo := seededRepo()
	before := repo.GetAll(context.Background())
	svc := NewRecordService(repo, discardLogger)

	_, err := svc.Edit(context.Background(), ports.EditRecordInput{
		ID:        "rec-1",
		StartTime: "2024-01-01T10:00:00Z",
		EndTime:   "2024-01-01T09:00:00Z",
	})
	if !errors.Is(err, domain.ErrEndBeforeStart) {
		t.Fatalf("expected ErrEndBeforeStart, got %v", err)
	}

	after := repo.GetAll(context.Background())
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("stored record changed after rejected edit: %+v != %+v", before[i], after[i])
		}
	}
}

func TestRecordService_Edit_EqualInstantsAllowed(t *testing.T) {
	repo := seededRepo()
	svc := NewRecordService(repo, discardLogger)

	updated, err := svc.Edit(context.Background(), ports.EditRecordInput{
		ID:        "rec-2",
		StartTime: "2024-01-02T09:00:00Z",
		EndTime:   "2024-01-02T09:00:00Z",
	})
	if err != nil {
		t.Fatalf("zero-length interval must be valid: %v", err)
	}
	if updated.DurationMs != 0 {
		t.Errorf("expected duration 0, got %d", updated.DurationMs)
	}
}

func TestRecordService_Edit_UnknownID(t *testing.T) {
	svc := NewRecordService(seededRepo(), discardLogger)

	_, err := svc.Edit(context.Background(), ports.EditRecordInput{
		ID:        "ghost",
		StartTime: "2024-01-01T09:00:00Z",
		EndTime:   "2024-01-01T10:00:00Z",
	})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecordService_Edit_UnparseableInstant(t *testing.T) {
	repo := seededRepo()
	svc := NewRecordService(repo, discardLogger)

	_, err := svc.Edit(context.Background(), ports.EditRecordInput{
		ID:        "rec-1",
		StartTime: "yesterday",
		EndTime:   "2024-01-01T10:00:00Z",
	})
	if !errors.Is(err, domain.ErrInvalidInstant) {
		t.Fatalf("expected ErrInvalidInstant, got %v", err)
	}
}

func TestParseInstant_Layouts(t *testing.T) {
	cases := []string{
		"2024-01-01T09:00:00Z",
		"2024-01-01T09:00:00.500Z",
		"2024-01-01T09:00:00+02:00",
		"2024-01-01T09:00:00",
		"2024-01-01T09:00",
	}
	for _, s := range cases {
		if _, err := ParseInstant(s); err != nil {
			t.Errorf("ParseInstant(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseInstant("01/02/2024 9am"); err == nil {
		t.Error("expected error for unsupported layout")
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestRecordService_Delete_RemovesExactlyOne(t *testing.T) {
	repo := seededRepo()
	svc := NewRecordService(repo, discardLogger)

	if err := svc.Delete(context.Background(), "rec-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	remaining := repo.GetAll(context.Background())
	if len(remaining) != 1 {
		t.Fatalf("expected 1 record left, got %d", len(remaining))
	}
	if remaining[0].ID != "rec-2" {
		t.Errorf("wrong record removed, %s survived", remaining[0].ID)
	}
}

func TestRecordService_Delete_UnknownIDIsNoop(t *testing.T) {
	repo := seededRepo()
	svc := NewRecordService(repo, discardLogger)

	if err := svc.Delete(context.Background(), "ghost"); err != nil {
		t.Fatalf("deleting unknown id must be a no-op, got %v", err)
	}
	if len(repo.GetAll(context.Background())) != 2 {
		t.Error("record count changed")
	}
}
