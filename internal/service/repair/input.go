package repair

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/internal/report"
)

// RecordInput is the full set of editable fields. Create and Update both
// take the whole record; Update replaces every field.
type RecordInput struct {
	ItemName    string
	DeviceType  *string
	RepairDate  string
	Location    string
	Cost        decimal.Decimal
	Status      string // empty = pending
	Notes       *string
	Attachments []string
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	_, err := i.fields(domain.MaxAttachments)
	return err
}

func (i RecordInput) fields(maxAttachments int) (domain.RepairFields, error) {
	var v domain.FieldValidator

	f := domain.RepairFields{
		ItemName:    v.RequiredText("item_name", i.ItemName, domain.MaxItemNameLen),
		DeviceType:  v.OptionalText("device_type", i.DeviceType, domain.MaxDeviceTypeLen),
		RepairDate:  v.Date("repair_date", i.RepairDate),
		Location:    v.RequiredText("location", i.Location, domain.MaxLocationLen),
		Cost:        v.Cost("cost", i.Cost),
		Notes:       v.OptionalText("notes", i.Notes, domain.MaxNotesLen),
		Attachments: v.Attachments("attachments", i.Attachments, maxAttachments),
		Status:      domain.RepairStatusPending,
	}

	if s := strings.TrimSpace(i.Status); s != "" {
		st, err := domain.ParseRepairStatus(s)
		if err != nil {
			v.Add("status", "must be one of pending, in_progress, completed, cancelled")
		}
		f.Status = st
	}

	if err := v.Err(); err != nil {
		return domain.RepairFields{}, err
	}
	return f, nil
}

// UpdateInput identifies the record to replace.
type UpdateInput struct {
	ID     uuid.UUID
	Record RecordInput
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return i.Record.Validate()
}

// ListInput selects and orders the listing.
type ListInput struct {
	Criteria  report.Criteria
	Sort      domain.SortKey
	Direction domain.SortDirection
}

func (i ListInput) sortKey() domain.SortKey {
	if i.Sort == "" {
		return domain.SortKeyDate
	}
	return i.Sort
}

func (i ListInput) direction() domain.SortDirection {
	if i.Direction == "" {
		return domain.SortDescending
	}
	return i.Direction
}
