package report

import (
	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

const notAvailable = "N/A"

type column struct {
	header string
	value  func(f fields) string
	width  float64 // mm, PDF only
	align  string  // fpdf alignment, PDF only
}

var (
	colItemName = column{header: "Item Name", value: func(f fields) string { return f.itemName }, width: 50, align: "L"}
	colDate     = column{header: "Date", value: func(f fields) string { return domain.FormatDate(f.date) }, width: 25, align: "L"}
	colLocation = column{header: "Location", value: func(f fields) string { return f.location }, width: 48, align: "L"}
	colNotes    = column{header: "Notes", value: func(f fields) string { return f.notes }}

	colCostRaw = column{header: "Cost", value: func(f fields) string { return f.cost.String() }}
	colCost    = column{header: "Cost", value: func(f fields) string { return FormatCurrency(f.cost) }, width: 25, align: "R"}

	colStatus       = column{header: "Status", value: func(f fields) string { return string(f.status) }, width: 34, align: "L"}
	colWarrantyRaw  = column{header: "Warranty Info", value: func(f fields) string { return f.warranty }}
	colWarrantyText = column{header: "Warranty Info", value: func(f fields) string {
		if f.warranty == "" {
			return notAvailable
		}
		return f.warranty
	}, width: 34, align: "L"}
)

var (
	repairCSVColumns   = []column{colItemName, colDate, colLocation, colCostRaw, colStatus, colNotes}
	purchaseCSVColumns = []column{colItemName, colDate, colLocation, colCostRaw, colWarrantyRaw, colNotes}

	repairPDFColumns   = []column{colItemName, colDate, colLocation, colCost, colStatus}
	purchasePDFColumns = []column{colItemName, colDate, colLocation, colCost, colWarrantyText}
)

func columnsFor(kind domain.RecordKind, format domain.ExportFormat) []column {
	switch {
	case kind == domain.RecordKindRepair && format == domain.ExportFormatPDF:
		return repairPDFColumns
	case kind == domain.RecordKindRepair:
		return repairCSVColumns
	case format == domain.ExportFormatPDF:
		return purchasePDFColumns
	default:
		return purchaseCSVColumns
	}
}

func headers(cols []column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.header
	}
	return out
}
