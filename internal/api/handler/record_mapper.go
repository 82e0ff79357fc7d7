package handler

import (
	"github.com/elegance/timesheet-system/internal/core/domain"
	"github.com/elegance/timesheet-system/internal/core/ports"
)

// --- Service result → HTTP response ---

func toRecordResponse(r domain.TimeRecord) recordResponse {
	return recordResponse{
		ID:          r.ID,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		DurationMs:  r.DurationMs,
		Duration:    domain.FormatDurationMillis(r.DurationMs),
		Description: r.Description,
	}
}

func toListResponse(r ports.RecordListResult) listRecordsResponse {
	items := make([]recordResponse, len(r.Records))
	for i, rec := range r.Records {
		items[i] = toRecordResponse(rec)
	}
	return listRecordsResponse{
		Data: items,
		Summary: recordsSummaryResponse{
			Count:     len(r.Records),
			TotalMs:   r.TotalMs,
			TotalTime: domain.FormatDurationMillis(r.TotalMs),
		},
	}
}

func toStatusResponse(s ports.TimerStatus) timerStatusResponse {
	resp := timerStatusResponse{
		Running:   s.Running,
		ElapsedMs: s.ElapsedMs,
		Elapsed:   domain.FormatDurationMillis(s.ElapsedMs),
	}
	if s.Running {
		start := s.StartTime
		resp.StartTime = &start
	}
	return resp
}
