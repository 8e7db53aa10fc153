package report

import "strings"

// Filter returns the records that satisfy every predicate in c, in their
// input order. The result is a new slice; records is not modified.
func Filter[R Record](records []R, c Criteria) []R {
	kind := KindOf[R]()
	needle := strings.ToLower(c.Text)

	out := make([]R, 0, len(records))
	for i := range records {
		if c.matches(kind, fieldsOf(&records[i]), needle) {
			out = append(out, records[i])
		}
	}
	return out
}
