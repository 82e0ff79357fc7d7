package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elegance/timesheet-system/internal/core/ports"
)

// TimerHandler exposes the session timer state machine.
type TimerHandler struct {
	service ports.TimerService
}

func NewTimerHandler(service ports.TimerService) *TimerHandler {
	return &TimerHandler{service: service}
}

// Status returns the live timer view. Elapsed is zero while idle.
//
// @Summary      Timer status
// @Tags         timer
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  timerStatusResponse
// @Router       /v1/timer [get]
func (h *TimerHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, toStatusResponse(h.service.Status()))
}

// Start begins a new session.
//
// @Summary      Start the timer
// @Tags         timer
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  startTimerResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/timer/start [post]
func (h *TimerHandler) Start(c echo.Context) error {
	start, err := h.service.Start(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, startTimerResponse{Running: true, StartTime: start})
}

// Stop ends the running session and returns the created record.
//
// @Summary      Stop the timer
// @Tags         timer
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  recordResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/timer/stop [post]
func (h *TimerHandler) Stop(c echo.Context) error {
	record, err := h.service.Stop(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRecordResponse(*record))
}
