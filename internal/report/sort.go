package report

import (
	"slices"
	"strings"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

// Sort returns a stably ordered copy of records. Records equal under the
// comparator keep their relative input order in both directions.
// An unrecognized key orders by date.
func Sort[R Record](records []R, key domain.SortKey, dir domain.SortDirection) []R {
	out := make([]R, len(records))
	copy(out, records)

	cmp := comparator(key)
	desc := dir == domain.SortDescending

	slices.SortStableFunc(out, func(a, b R) int {
		c := cmp(fieldsOf(&a), fieldsOf(&b))
		if desc {
			return -c
		}
		return c
	})
	return out
}

func comparator(key domain.SortKey) func(a, b fields) int {
	switch key {
	case domain.SortKeyCost:
		return func(a, b fields) int { return a.cost.Cmp(b.cost) }
	case domain.SortKeyName:
		return func(a, b fields) int { return strings.Compare(a.itemName, b.itemName) }
	default:
		return func(a, b fields) int { return a.date.Compare(b.date) }
	}
}

// View applies Filter and then Sort.
func View[R Record](records []R, c Criteria, key domain.SortKey, dir domain.SortDirection) []R {
	return Sort(Filter(records, c), key, dir)
}
