package report

import (
	"strings"
	"time"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

// Criteria configures Filter. The zero value matches every record.
type Criteria struct {
	// Text is matched case-insensitively as a substring of item name and
	// location, and for repairs also of device type and status. Empty matches all.
	Text string

	// DeviceType must equal the record's device type exactly. Empty or
	// domain.DeviceTypeAll disables the predicate. Repairs only.
	DeviceType string

	// Status must equal the record's status. Nil disables the predicate. Repairs only.
	Status *domain.RepairStatus

	// DateFrom and DateTo are inclusive calendar date bounds. Nil is open.
	// A DateFrom after DateTo is not an error; it simply matches nothing.
	DateFrom *time.Time
	DateTo   *time.Time
}

// CriteriaInput is the raw, string-typed form of Criteria as it arrives from a
// query string or CLI flags.
type CriteriaInput struct {
	Text       string
	DeviceType string
	Status     string
	DateFrom   string
	DateTo     string
}

// ParseCriteria validates raw input and builds Criteria. Status accepts
// "all" or "" as "any status"; any other value must be a known status.
func ParseCriteria(in CriteriaInput) (Criteria, error) {
	var v domain.FieldValidator
	c := Criteria{
		Text:       strings.TrimSpace(in.Text),
		DeviceType: strings.TrimSpace(in.DeviceType),
	}

	if s := strings.TrimSpace(in.Status); s != "" && s != "all" {
		st, err := domain.ParseRepairStatus(s)
		if err != nil {
			v.Add("status", "unknown status")
		} else {
			c.Status = &st
		}
	}

	if s := strings.TrimSpace(in.DateFrom); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			v.Add("from", err.Error())
		} else {
			c.DateFrom = &d
		}
	}

	if s := strings.TrimSpace(in.DateTo); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			v.Add("to", err.Error())
		} else {
			c.DateTo = &d
		}
	}

	if err := v.Err(); err != nil {
		return Criteria{}, err
	}
	return c, nil
}

func (c Criteria) matches(kind domain.RecordKind, f fields, needle string) bool {
	if needle != "" && !matchesText(kind, f, needle) {
		return false
	}

	if kind == domain.RecordKindRepair {
		if c.DeviceType != "" && c.DeviceType != domain.DeviceTypeAll && f.deviceType != c.DeviceType {
			return false
		}
		if c.Status != nil && f.status != *c.Status {
			return false
		}
	}

	if c.DateFrom != nil && f.date.Before(domain.DateOf(*c.DateFrom)) {
		return false
	}
	if c.DateTo != nil && f.date.After(domain.DateOf(*c.DateTo)) {
		return false
	}
	return true
}

func matchesText(kind domain.RecordKind, f fields, needle string) bool {
	if strings.Contains(strings.ToLower(f.itemName), needle) ||
		strings.Contains(strings.ToLower(f.location), needle) {
		return true
	}
	if kind != domain.RecordKindRepair {
		return false
	}
	return strings.Contains(strings.ToLower(f.deviceType), needle) ||
		strings.Contains(strings.ToLower(string(f.status)), needle)
}
