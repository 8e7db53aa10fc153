package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

// Record is the set of record kinds the engine understands.
type Record interface {
	domain.RepairRecord | domain.PurchaseRecord
}

// fields is the kind-independent projection of a record.
type fields struct {
	itemName   string
	deviceType string
	status     domain.RepairStatus
	date       time.Time
	location   string
	cost       decimal.Decimal
	warranty   string
	notes      string
}

func fieldsOf[R Record](r *R) fields {
	switch v := any(r).(type) {
	case *domain.RepairRecord:
		return fields{
			itemName:   v.ItemName,
			deviceType: domain.StringOrEmpty(v.DeviceType),
			status:     v.Status,
			date:       domain.DateOf(v.RepairDate),
			location:   v.Location,
			cost:       v.Cost,
			notes:      domain.StringOrEmpty(v.Notes),
		}
	case *domain.PurchaseRecord:
		return fields{
			itemName: v.ItemName,
			date:     domain.DateOf(v.PurchaseDate),
			location: v.Location,
			cost:     v.Cost,
			warranty: domain.StringOrEmpty(v.WarrantyInfo),
			notes:    domain.StringOrEmpty(v.Notes),
		}
	}
	return fields{}
}

// KindOf returns the record kind handled by an instantiation of R.
func KindOf[R Record]() domain.RecordKind {
	var zero R
	if _, ok := any(zero).(domain.RepairRecord); ok {
		return domain.RecordKindRepair
	}
	return domain.RecordKindPurchase
}
