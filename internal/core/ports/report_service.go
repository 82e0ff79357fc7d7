package ports

import "context"

// ReportResult is a rendered export artifact.
type ReportResult struct {
	Filename string
	Data     []byte
}

// ReportService renders the record list into a downloadable document.
type ReportService interface {
	// Timesheet renders the full record list as a PDF. An empty list still
	// produces a valid document with a zero summary.
	Timesheet(ctx context.Context) (*ReportResult, error)
}
