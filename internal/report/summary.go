package report

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

// Summary aggregates a set of records.
type Summary struct {
	Count     int
	TotalCost decimal.Decimal
	// ByStatus is populated for repairs only; every known status is present.
	ByStatus map[domain.RepairStatus]int
}

// Summarize counts records and totals their cost.
func Summarize[R Record](records []R) Summary {
	s := Summary{TotalCost: decimal.Zero}

	repairs := KindOf[R]() == domain.RecordKindRepair
	if repairs {
		s.ByStatus = make(map[domain.RepairStatus]int, len(domain.RepairStatuses))
		for _, st := range domain.RepairStatuses {
			s.ByStatus[st] = 0
		}
	}

	for i := range records {
		f := fieldsOf(&records[i])
		s.Count++
		s.TotalCost = s.TotalCost.Add(f.cost)
		if repairs {
			s.ByStatus[f.status]++
		}
	}
	return s
}

// DeviceTypes returns the distinct non-empty device types in first-seen order.
// Purchase records carry no device type, so the result is empty for them.
func DeviceTypes[R Record](records []R) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := range records {
		dt := fieldsOf(&records[i]).deviceType
		if dt == "" {
			continue
		}
		if _, ok := seen[dt]; ok {
			continue
		}
		seen[dt] = struct{}{}
		out = append(out, dt)
	}
	return out
}

// FormatCurrency renders a cost for display: "$" and exactly two decimals.
func FormatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
