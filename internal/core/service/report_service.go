package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog"

	"github.com/elegance/timesheet-system/internal/api/metrics"
	"github.com/elegance/timesheet-system/internal/core/domain"
	"github.com/elegance/timesheet-system/internal/core/ports"
)

// Table geometry in millimeters, A4 portrait.
const (
	reportMarginLeft = 14.0
	reportRowHeight  = 8.0
)

var reportColumns = []struct {
	title string
	width float64
}{
	{"Date", 50},
	{"Start Time", 44},
	{"End Time", 44},
	{"Duration", 44},
}

// ReportService renders the record list into the exported PDF timesheet.
type ReportService struct {
	repo   ports.RecordRepository
	logger zerolog.Logger
}

func NewReportService(repo ports.RecordRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, logger: logger}
}

// Timesheet renders all records, in store order, into a downloadable PDF.
// No persistence side effects; an empty list still yields a valid document.
func (s *ReportService) Timesheet(ctx context.Context) (*ports.ReportResult, error) {
	records := s.repo.GetAll(ctx)
	now := time.Now()

	data, err := renderTimesheet(records, now)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to render timesheet")
		return nil, err
	}

	metrics.ReportsGeneratedTotal.Inc()
	s.logger.Info().Int("records", len(records)).Msg("timesheet rendered")
	return &ports.ReportResult{
		Filename: "Timesheet_" + now.Format("2006-01-02") + ".pdf",
		Data:     data,
	}, nil
}

func renderTimesheet(records []domain.TimeRecord, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header block: title plus generation timestamp.
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(30, 41, 59)
	pdf.SetXY(reportMarginLeft, 12)
	pdf.CellFormat(0, 10, "Timesheet Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetX(reportMarginLeft)
	pdf.CellFormat(0, 6, "Generated on: "+now.Format("January 2, 2006 3:04 PM"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Column headers.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(79, 70, 229)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetX(reportMarginLeft)
	for _, col := range reportColumns {
		pdf.CellFormat(col.width, reportRowHeight, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// One row per record, alternating fill.
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(30, 41, 59)
	for i, rec := range records {
		if i%2 == 1 {
			pdf.SetFillColor(248, 250, 252)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetX(reportMarginLeft)
		for j, cell := range recordRow(rec) {
			pdf.CellFormat(reportColumns[j].width, reportRowHeight, cell, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	// Summary block.
	count, total := summarize(records)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(reportMarginLeft)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total Records: %d", count), "", 1, "L", false, 0, "")
	pdf.SetX(reportMarginLeft)
	pdf.CellFormat(0, 7, "Total Time: "+total, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render timesheet: %w", err)
	}
	return buf.Bytes(), nil
}

// recordRow formats one record into its table cells: date, start time,
// end time, duration as HH:MM:SS.
func recordRow(r domain.TimeRecord) [4]string {
	return [4]string{
		r.StartTime.Format("Jan 02, 2006"),
		r.StartTime.Format("15:04:05"),
		r.EndTime.Format("15:04:05"),
		domain.FormatDurationMillis(r.DurationMs),
	}
}

// summarize returns the record count and the formatted duration sum.
func summarize(records []domain.TimeRecord) (int, string) {
	var total int64
	for _, r := range records {
		total += r.DurationMs
	}
	return len(records), domain.FormatDurationMillis(total)
}
