package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Field limits shared by both record kinds.
const (
	MaxItemNameLen   = 255
	MaxLocationLen   = 255
	MaxDeviceTypeLen = 100
	MaxNotesLen      = 5000
	MaxWarrantyLen   = 1000
	MaxAttachments   = 20
	CostDecimals     = 2
)

// FieldValidator collects field errors across a whole input so callers can
// report every problem at once.
type FieldValidator struct {
	errs []FieldError
}

// Add records an error for field.
func (v *FieldValidator) Add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

// Merge absorbs err: field errors of a *ValidationError are kept as they
// are, any other error is recorded against field.
func (v *FieldValidator) Merge(field string, err error) {
	if err == nil {
		return
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		v.errs = append(v.errs, ve.Errors...)
		return
	}
	v.Add(field, err.Error())
}

// Err returns a *ValidationError if anything was recorded, otherwise nil.
func (v *FieldValidator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return NewValidationErrors(v.errs)
}

// RequiredText trims value and checks it is non-empty and within max runes.
func (v *FieldValidator) RequiredText(field, value string, max int) string {
	value = strings.TrimSpace(value)
	if value == "" {
		v.Add(field, "required")
		return value
	}
	if utf8.RuneCountInString(value) > max {
		v.Add(field, fmt.Sprintf("max %d characters", max))
	}
	return value
}

// OptionalText trims value; blank becomes nil.
func (v *FieldValidator) OptionalText(field string, value *string, max int) *string {
	if value == nil {
		return nil
	}
	s := strings.TrimSpace(*value)
	if s == "" {
		return nil
	}
	if utf8.RuneCountInString(s) > max {
		v.Add(field, fmt.Sprintf("max %d characters", max))
	}
	return &s
}

// Date parses a required calendar date.
func (v *FieldValidator) Date(field, raw string) time.Time {
	if strings.TrimSpace(raw) == "" {
		v.Add(field, "required")
		return time.Time{}
	}
	d, err := ParseDate(raw)
	if err != nil {
		v.Add(field, "must be a date in YYYY-MM-DD format")
		return time.Time{}
	}
	return d
}

// Cost checks that d is non-negative with at most two decimal places.
func (v *FieldValidator) Cost(field string, d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		v.Add(field, "must not be negative")
		return d
	}
	if !d.Equal(d.Truncate(CostDecimals)) {
		v.Add(field, "at most 2 decimal places")
	}
	return d.Round(CostDecimals)
}

// Attachments checks the count and that every entry is an absolute http(s) URL.
func (v *FieldValidator) Attachments(field string, urls []string, max int) []string {
	out := make([]string, 0, len(urls))
	if len(urls) > max {
		v.Add(field, fmt.Sprintf("max %d attachments", max))
		return out
	}
	for i, raw := range urls {
		raw = strings.TrimSpace(raw)
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			v.Add(fmt.Sprintf("%s[%d]", field, i), "must be an absolute http(s) URL")
			continue
		}
		out = append(out, raw)
	}
	return out
}
