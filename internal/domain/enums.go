package domain

import (
	"fmt"
	"strings"
)

// RecordKind identifies which log a record belongs to.
type RecordKind string

const (
	RecordKindRepair   RecordKind = "repair"
	RecordKindPurchase RecordKind = "purchase"
)

func (k RecordKind) String() string { return string(k) }

func (k RecordKind) IsValid() bool {
	switch k {
	case RecordKindRepair, RecordKindPurchase:
		return true
	}
	return false
}

// ParseRecordKind converts raw input into a RecordKind. Case-insensitive.
func ParseRecordKind(s string) (RecordKind, error) {
	k := RecordKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", NewValidationError("kind", fmt.Sprintf("unknown record kind %q", s))
	}
	return k, nil
}

// RepairStatus is the lifecycle state of a repair.
type RepairStatus string

const (
	RepairStatusPending    RepairStatus = "pending"
	RepairStatusInProgress RepairStatus = "in_progress"
	RepairStatusCompleted  RepairStatus = "completed"
	RepairStatusCancelled  RepairStatus = "cancelled"
)

// RepairStatuses lists every status in display order.
var RepairStatuses = []RepairStatus{
	RepairStatusPending,
	RepairStatusInProgress,
	RepairStatusCompleted,
	RepairStatusCancelled,
}

func (s RepairStatus) String() string { return string(s) }

func (s RepairStatus) IsValid() bool {
	switch s {
	case RepairStatusPending, RepairStatusInProgress, RepairStatusCompleted, RepairStatusCancelled:
		return true
	}
	return false
}

// ParseRepairStatus converts raw input into a RepairStatus.
func ParseRepairStatus(s string) (RepairStatus, error) {
	st := RepairStatus(strings.TrimSpace(s))
	if !st.IsValid() {
		return "", NewValidationError("status", fmt.Sprintf("unknown status %q", s))
	}
	return st, nil
}

// SortKey selects the comparator used when ordering records.
type SortKey string

const (
	SortKeyDate SortKey = "date"
	SortKeyCost SortKey = "cost"
	SortKeyName SortKey = "name"
)

func (k SortKey) String() string { return string(k) }

func (k SortKey) IsValid() bool {
	switch k {
	case SortKeyDate, SortKeyCost, SortKeyName:
		return true
	}
	return false
}

// ParseSortKey converts raw input into a SortKey. Empty input yields SortKeyDate.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortKeyDate, nil
	}
	k := SortKey(strings.ToLower(s))
	if !k.IsValid() {
		return "", NewValidationError("sort", fmt.Sprintf("unknown sort key %q", s))
	}
	return k, nil
}

// SortDirection is ascending or descending.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

func (d SortDirection) String() string { return string(d) }

func (d SortDirection) IsValid() bool {
	return d == SortAscending || d == SortDescending
}

// ParseSortDirection converts raw input into a SortDirection. Empty input yields SortDescending.
func ParseSortDirection(s string) (SortDirection, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortDescending, nil
	}
	d := SortDirection(strings.ToLower(s))
	if !d.IsValid() {
		return "", NewValidationError("order", fmt.Sprintf("unknown sort order %q", s))
	}
	return d, nil
}

// ExportFormat is the serialization format of a report export.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

func (f ExportFormat) String() string { return string(f) }

func (f ExportFormat) IsValid() bool {
	return f == ExportFormatCSV || f == ExportFormatPDF
}

// Extension returns the file extension (without dot).
func (f ExportFormat) Extension() string { return string(f) }

// ContentType returns the MIME type of the format.
func (f ExportFormat) ContentType() string {
	if f == ExportFormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// ParseExportFormat converts raw input into an ExportFormat.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", NewValidationError("format", fmt.Sprintf("unknown export format %q", s))
	}
	return f, nil
}

// DeviceTypeAll is the filter sentinel meaning "any device type".
const DeviceTypeAll = "all"

// KnownDeviceTypes are the suggested device types. DeviceType is free text,
// so values outside this list are accepted.
var KnownDeviceTypes = []string{
	"printer", "copier", "scanner", "computer", "laptop", "monitor",
	"keyboard", "mouse", "router", "switch", "phone", "tablet", "other",
}
