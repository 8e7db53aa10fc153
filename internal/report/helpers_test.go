package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func repair(t *testing.T, name, day, cost string, status domain.RepairStatus) domain.RepairRecord {
	t.Helper()
	return domain.RepairRecord{
		ID:         uuid.New(),
		ItemName:   name,
		RepairDate: date(t, day),
		Location:   "HQ",
		Cost:       decimal.RequireFromString(cost),
		Status:     status,
	}
}

func purchase(t *testing.T, name, day, cost string) domain.PurchaseRecord {
	t.Helper()
	return domain.PurchaseRecord{
		ID:           uuid.New(),
		ItemName:     name,
		PurchaseDate: date(t, day),
		Location:     "Store",
		Cost:         decimal.RequireFromString(cost),
	}
}

// scenarioRecords are the two records used by the worked examples.
func scenarioRecords(t *testing.T) []domain.RepairRecord {
	t.Helper()
	return []domain.RepairRecord{
		repair(t, "Printer A", "2024-01-10", "50.00", domain.RepairStatusPending),
		repair(t, "Printer B", "2024-02-05", "30.00", domain.RepairStatusCompleted),
	}
}

func names[R Record](records []R) []string {
	out := make([]string, len(records))
	for i := range records {
		out[i] = fieldsOf(&records[i]).itemName
	}
	return out
}
