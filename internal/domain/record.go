package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RepairRecord is a single repair event for a physical item.
type RepairRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ItemName    string
	DeviceType  *string
	RepairDate  time.Time
	Location    string
	Cost        decimal.Decimal
	Status      RepairStatus
	Notes       *string
	Attachments []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPersisted reports whether the store has assigned an id.
func (r *RepairRecord) IsPersisted() bool {
	return r.ID != uuid.Nil
}

// PurchaseRecord is a single purchase event for a physical item.
type PurchaseRecord struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ItemName     string
	PurchaseDate time.Time
	Location     string
	Cost         decimal.Decimal
	WarrantyInfo *string
	Notes        *string
	Attachments  []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsPersisted reports whether the store has assigned an id.
func (p *PurchaseRecord) IsPersisted() bool {
	return p.ID != uuid.Nil
}

// RecordListFilter narrows a store listing. Nil bounds are open.
type RecordListFilter struct {
	DateFrom  *time.Time
	DateTo    *time.Time
	Ascending bool
}

// RepairFields holds the mutable fields of a repair record.
type RepairFields struct {
	ItemName    string
	DeviceType  *string
	RepairDate  time.Time
	Location    string
	Cost        decimal.Decimal
	Status      RepairStatus
	Notes       *string
	Attachments []string
}

// PurchaseFields holds the mutable fields of a purchase record.
type PurchaseFields struct {
	ItemName     string
	PurchaseDate time.Time
	Location     string
	Cost         decimal.Decimal
	WarrantyInfo *string
	Notes        *string
	Attachments  []string
}

// StringOrEmpty dereferences s, returning "" for nil.
func StringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
