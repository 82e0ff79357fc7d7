package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elegance/timesheet-system/internal/core/domain"
	"github.com/elegance/timesheet-system/internal/core/ports"
)

// RecordHandler handles HTTP requests for completed time records.
type RecordHandler struct {
	service ports.RecordService
}

func NewRecordHandler(service ports.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// List returns all records, most-recent-first, with the summary total.
//
// @Summary      List records
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listRecordsResponse
// @Router       /v1/records [get]
func (h *RecordHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, toListResponse(h.service.List(c.Request().Context())))
}

// Update rewrites the start/end instants of an existing record. The stored
// record is left untouched when validation fails.
//
// @Summary      Edit a record's interval
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Record id"
// @Param        body  body      updateRecordRequest  true  "New start/end instants"
// @Success      200   {object}  recordResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/records/{id} [put]
func (h *RecordHandler) Update(c echo.Context) error {
	var req updateRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	record, err := h.service.Edit(c.Request().Context(), ports.EditRecordInput{
		ID:        c.Param("id"),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRecordResponse(*record))
}

// Delete removes a record. The destructive action gates on an explicit
// confirm=true query parameter; without it nothing is removed. Deleting an
// unknown id is a no-op.
//
// @Summary      Delete a record
// @Tags         records
// @Security     BearerAuth
// @Param        id       path   string  true  "Record id"
// @Param        confirm  query  bool    true  "Must be true to proceed"
// @Success      204
// @Failure      409  {object}  errorResponse
// @Router       /v1/records/{id} [delete]
func (h *RecordHandler) Delete(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return domain.ErrDeleteNotConfirmed
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
