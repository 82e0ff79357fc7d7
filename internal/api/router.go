package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/elegance/timesheet-system/internal/api/handler"
	"github.com/elegance/timesheet-system/internal/api/middleware"
	"github.com/elegance/timesheet-system/internal/core/ports"
	"github.com/elegance/timesheet-system/internal/core/service"
	"github.com/elegance/timesheet-system/internal/infrastructure/localstore"
	"github.com/elegance/timesheet-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The record repository and timer service are shared with the caller, which
// owns the timer lifecycle (resume at boot, shutdown on exit).
func NewRouter(
	st *localstore.Store,
	records ports.RecordRepository,
	timer ports.TimerService,
	cfg *config.Config,
	log zerolog.Logger,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("timesheet"))

	// --- Dependencies ---
	userRepo := localstore.NewUserRepository(st)
	authService, err := service.NewAuthService(userRepo, service.Credential{
		Email:    cfg.Auth.AdminEmail,
		Password: cfg.Auth.AdminPassword,
	}, cfg.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}
	recordService := service.NewRecordService(records, log)
	reportService := service.NewReportService(records, log)

	authHandler := handler.NewAuthHandler(authService)
	timerHandler := handler.NewTimerHandler(timer)
	recordHandler := handler.NewRecordHandler(recordService)
	reportHandler := handler.NewReportHandler(reportService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- Protected API ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/me", authHandler.Me)
	v1.POST("/logout", authHandler.Logout)
	v1.GET("/timer", timerHandler.Status)
	v1.POST("/timer/start", timerHandler.Start)
	v1.POST("/timer/stop", timerHandler.Stop)
	v1.GET("/records", recordHandler.List)
	v1.PUT("/records/:id", recordHandler.Update)
	v1.DELETE("/records/:id", recordHandler.Delete)
	v1.GET("/reports/timesheet", reportHandler.Timesheet)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(st)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
