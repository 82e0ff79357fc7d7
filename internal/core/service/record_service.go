package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/elegance/timesheet-system/internal/api/metrics"
	"github.com/elegance/timesheet-system/internal/core/domain"
	"github.com/elegance/timesheet-system/internal/core/ports"
)

// instantLayouts are the accepted edit-field formats: RFC3339 (with or
// without sub-second precision) and the zoneless datetime-local shapes, the
// latter interpreted in the server's local clock.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseInstant parses an edit-field instant string.
func ParseInstant(s string) (time.Time, error) {
	for _, layout := range instantLayouts {
		var (
			t   time.Time
			err error
		)
		if layout == time.RFC3339Nano {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidInstant, s)
}

// RecordService implements list, edit, and delete over completed records.
type RecordService struct {
	repo   ports.RecordRepository
	logger zerolog.Logger
}

func NewRecordService(repo ports.RecordRepository, logger zerolog.Logger) *RecordService {
	return &RecordService{repo: repo, logger: logger}
}

func (s *RecordService) List(ctx context.Context) ports.RecordListResult {
	records := s.repo.GetAll(ctx)

	var total int64
	for _, r := range records {
		total += r.DurationMs
	}
	return ports.RecordListResult{Records: records, TotalMs: total}
}

// Edit validates and rewrites the interval of an existing record. The stored
// record is untouched unless every check passes; the replacement value keeps
// the id and description and carries a recomputed duration.
func (s *RecordService) Edit(ctx context.Context, input ports.EditRecordInput) (*domain.TimeRecord, error) {
	start, err := ParseInstant(input.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseInstant(input.EndTime)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, domain.ErrEndBeforeStart
	}

	var existing *domain.TimeRecord
	for _, r := range s.repo.GetAll(ctx) {
		if r.ID == input.ID {
			existing = &r
			break
		}
	}
	if existing == nil {
		return nil, domain.ErrRecordNotFound
	}

	updated := existing.WithInterval(start, end)
	if err := s.repo.Update(ctx, updated); err != nil {
		s.logger.Error().Err(err).Str("record_id", updated.ID).Msg("failed to persist record edit")
		return nil, err
	}

	metrics.RecordsEditedTotal.Inc()
	s.logger.Info().Str("record_id", updated.ID).Int64("duration_ms", updated.DurationMs).Msg("record edited")
	return &updated, nil
}

// Delete removes the record with the given id. Deleting an unknown id is a
// no-op, matching the store contract.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("record_id", id).Msg("failed to delete record")
		return err
	}

	metrics.RecordsDeletedTotal.Inc()
	s.logger.Info().Str("record_id", id).Msg("record deleted")
	return nil
}
