package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elegance/timesheet-system/internal/api"
	"github.com/elegance/timesheet-system/internal/core/service"
	"github.com/elegance/timesheet-system/internal/infrastructure/localstore"
	"github.com/elegance/timesheet-system/internal/pkg/config"
	"github.com/elegance/timesheet-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	st, err := localstore.Open(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Str("data_dir", cfg.DataDir).Msg("failed to open local store")
	}

	recordRepo := localstore.NewRecordRepository(st)
	sessionRepo := localstore.NewSessionRepository(st)

	timer := service.NewTimerService(recordRepo, sessionRepo, log, cfg.Timer.TickInterval)
	// A marker left by a previous run means a session was in flight; re-enter
	// Running with the persisted start instant, no record created.
	timer.Resume(context.Background())

	e, err := api.NewRouter(st, recordRepo, timer, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("timesheet service listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	timer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
