package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	engine "github.com/heartmarshall/itemlog-backend/internal/report"
)

// listQuery is the parsed form of ?q=&device_type=&status=&from=&to=&sort=&order=.
type listQuery struct {
	Criteria  engine.Criteria
	Sort      domain.SortKey
	Direction domain.SortDirection
}

func parseListQuery(r *http.Request) (listQuery, error) {
	q := r.URL.Query()

	var v domain.FieldValidator
	criteria, err := engine.ParseCriteria(engine.CriteriaInput{
		Text:       q.Get("q"),
		DeviceType: q.Get("device_type"),
		Status:     q.Get("status"),
		DateFrom:   q.Get("from"),
		DateTo:     q.Get("to"),
	})
	v.Merge("query", err)

	sort, err := domain.ParseSortKey(q.Get("sort"))
	v.Merge("sort", err)

	dir, err := domain.ParseSortDirection(q.Get("order"))
	v.Merge("order", err)

	if err := v.Err(); err != nil {
		return listQuery{}, err
	}
	return listQuery{Criteria: criteria, Sort: sort, Direction: dir}, nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a uuid")
	}
	return id, nil
}

func pathKind(r *http.Request) (domain.RecordKind, error) {
	return domain.ParseRecordKind(r.PathValue("kind"))
}
