package domain

import (
	"testing"
	"time"
)

func TestFormatDurationMillis(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00"},
		{999, "00:00:00"},
		{1000, "00:00:01"},
		{61000, "00:01:01"},
		{3661000, "01:01:01"},
		{30600000, "08:30:00"},          // 8.5h work day
		{3722000, "01:02:02"},           // 3661000 + 61000
		{100 * 3600 * 1000, "100:00:00"}, // hours unbounded past 24
	}

	for _, tc := range cases {
		if got := FormatDurationMillis(tc.ms); got != tc.want {
			t.Errorf("FormatDurationMillis(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}

func TestNewTimeRecord(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 17, 30, 0, 0, time.UTC)

	rec := NewTimeRecord("abc123", start, end)

	if rec.ID != "abc123" {
		t.Errorf("unexpected id: %s", rec.ID)
	}
	if rec.DurationMs != 30600000 {
		t.Errorf("expected duration 30600000, got %d", rec.DurationMs)
	}
	if rec.DurationMs != DurationBetween(rec.StartTime, rec.EndTime) {
		t.Error("duration must equal end - start")
	}
	if rec.Description != DefaultDescription {
		t.Errorf("expected default description, got %q", rec.Description)
	}
	if got := FormatDurationMillis(rec.DurationMs); got != "08:30:00" {
		t.Errorf("expected 08:30:00, got %s", got)
	}
}

func TestNewTimeRecord_ZeroDuration(t *testing.T) {
	now := time.Now()
	rec := NewTimeRecord("z", now, now)
	if rec.DurationMs != 0 {
		t.Errorf("zero-length interval must have duration 0, got %d", rec.DurationMs)
	}
}

func TestWithInterval(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	orig := NewTimeRecord("r1", start, end)

	newStart := start.Add(-time.Hour)
	newEnd := end.Add(time.Hour)
	edited := orig.WithInterval(newStart, newEnd)

	if edited.ID != orig.ID || edited.Description != orig.Description {
		t.Error("id and description must be preserved")
	}
	if edited.DurationMs != DurationBetween(newStart, newEnd) {
		t.Error("duration must be recomputed from the new interval")
	}
	// Value semantics: the original is untouched.
	if orig.StartTime != start || orig.DurationMs != 3600000 {
		t.Error("original record must not be mutated")
	}
}
