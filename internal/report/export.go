package report

import (
	"fmt"
	"time"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

// Export is a rendered report ready to be written to a file or an HTTP response.
type Export struct {
	Kind        domain.RecordKind
	Format      domain.ExportFormat
	Filename    string
	ContentType string
	Data        []byte
	Rows        int
}

// Serialize renders records in the given format. Records are written in the
// order given. now only determines the filename date and PDF metadata.
func Serialize[R Record](records []R, format domain.ExportFormat, now time.Time) (*Export, error) {
	kind := KindOf[R]()

	rows := make([]fields, len(records))
	for i := range records {
		rows[i] = fieldsOf(&records[i])
	}

	cols := columnsFor(kind, format)

	var (
		data []byte
		err  error
	)
	switch format {
	case domain.ExportFormatCSV:
		data, err = writeCSV(cols, rows)
	case domain.ExportFormatPDF:
		data, err = writePDF(Title(kind), cols, rows, now)
	default:
		return nil, domain.NewValidationError("format", "unsupported export format")
	}
	if err != nil {
		return nil, fmt.Errorf("serialize %s %s: %w", kind, format, err)
	}

	return &Export{
		Kind:        kind,
		Format:      format,
		Filename:    Filename(kind, format, now),
		ContentType: format.ContentType(),
		Data:        data,
		Rows:        len(rows),
	}, nil
}

// Filename returns "<kind>-logs-<YYYY-MM-DD>.<ext>".
func Filename(kind domain.RecordKind, format domain.ExportFormat, now time.Time) string {
	return fmt.Sprintf("%s-logs-%s.%s", kind, now.Format(domain.DateLayout), format.Extension())
}

// Title is the heading printed at the top of a PDF report.
func Title(kind domain.RecordKind) string {
	if kind == domain.RecordKindRepair {
		return "Repair Logs"
	}
	return "Purchase Logs"
}
