package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elegance/timesheet-system/internal/core/ports"
)

// ReportHandler serves the exported timesheet document.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Timesheet renders all records into a PDF and returns it as a download.
//
// @Summary      Export the timesheet as PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  file
// @Router       /v1/reports/timesheet [get]
func (h *ReportHandler) Timesheet(c echo.Context) error {
	result, err := h.service.Timesheet(c.Request().Context())
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", result.Data)
}
