package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/elegance/timesheet-system/internal/api/metrics"
	"github.com/elegance/timesheet-system/internal/core/domain"
	"github.com/elegance/timesheet-system/internal/core/ports"
)

const defaultTick = 100 * time.Millisecond

// TimerService owns the Idle/Running state machine. While Running it keeps a
// live elapsed value fresh on a fixed tick; that value feeds the status
// endpoint and the elapsed gauge only, never the persisted model. The ticker
// is torn down on every transition out of Running and on Shutdown.
type TimerService struct {
	records ports.RecordRepository
	marker  ports.SessionMarkerRepository
	logger  zerolog.Logger
	tick    time.Duration

	mu        sync.Mutex
	running   bool
	startTime time.Time
	elapsedMs int64
	stopTick  chan struct{}
}

func NewTimerService(records ports.RecordRepository, marker ports.SessionMarkerRepository, logger zerolog.Logger, tick time.Duration) *TimerService {
	if tick <= 0 {
		tick = defaultTick
	}
	return &TimerService{
		records: records,
		marker:  marker,
		logger:  logger,
		tick:    tick,
	}
}

// Resume re-enters the Running state from a persisted marker, without
// creating a record. Call once at startup; absent marker means stay Idle.
func (s *TimerService) Resume(ctx context.Context) {
	start, ok := s.marker.Get(ctx)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.enterRunning(start)

	metrics.SessionsStartedTotal.WithLabelValues("resume").Inc()
	s.logger.Info().Time("start_time", start).Msg("resumed running session from marker")
}

func (s *TimerService) Status() ports.TimerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return ports.TimerStatus{}
	}
	return ports.TimerStatus{
		Running:   true,
		StartTime: s.startTime,
		ElapsedMs: s.elapsedMs,
	}
}

// Start captures the current instant, persists the resume marker, and begins
// the live elapsed tick. A running session makes Start fail without touching
// the existing state.
func (s *TimerService) Start(ctx context.Context) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return time.Time{}, domain.ErrSessionRunning
	}

	now := time.Now()
	if err := s.marker.Set(ctx, now); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session marker")
		return time.Time{}, err
	}
	s.enterRunning(now)

	metrics.SessionsStartedTotal.WithLabelValues("start").Inc()
	s.logger.Info().Time("start_time", now).Msg("session started")
	return now, nil
}

// Stop captures the end instant, persists the completed record, and clears
// the marker. The record list and the marker are two independent blobs;
// consistency between them is best-effort by design.
func (s *TimerService) Stop(ctx context.Context) (*domain.TimeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil, domain.ErrSessionIdle
	}

	end := time.Now()
	record := domain.NewTimeRecord(uuid.NewString(), s.startTime, end)
	if err := s.records.Add(ctx, record); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist record")
		return nil, err
	}
	if err := s.marker.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear session marker")
	}
	s.leaveRunning()

	metrics.SessionsCompletedTotal.Inc()
	metrics.SessionDurationSeconds.Observe(float64(record.DurationMs) / 1000)
	s.logger.Info().
		Str("record_id", record.ID).
		Int64("duration_ms", record.DurationMs).
		Msg("session stopped")
	return &record, nil
}

// Shutdown cancels the live tick. Idempotent; the persisted marker is left in
// place so the session resumes on the next boot.
func (s *TimerService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.leaveRunning()
	}
}

// enterRunning and leaveRunning require s.mu held.

func (s *TimerService) enterRunning(start time.Time) {
	s.running = true
	s.startTime = start
	s.elapsedMs = time.Since(start).Milliseconds()
	s.stopTick = make(chan struct{})
	go s.runTicker(start, s.stopTick)
}

func (s *TimerService) leaveRunning() {
	close(s.stopTick)
	s.running = false
	s.startTime = time.Time{}
	s.elapsedMs = 0
	metrics.SessionElapsedSeconds.Set(0)
}

func (s *TimerService) runTicker(start time.Time, stop <-chan struct{}) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ms := time.Since(start).Milliseconds()
			s.mu.Lock()
			if s.running && s.startTime.Equal(start) {
				s.elapsedMs = ms
				metrics.SessionElapsedSeconds.Set(float64(ms) / 1000)
			}
			s.mu.Unlock()
		}
	}
}
