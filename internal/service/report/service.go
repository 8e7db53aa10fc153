// Package report serves report views, exports and the dashboard summary
// over the authenticated user's repair and purchase logs.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	engine "github.com/heartmarshall/itemlog-backend/internal/report"
)

type repairLister interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.RecordListFilter) ([]domain.RepairRecord, error)
}

type purchaseLister interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.RecordListFilter) ([]domain.PurchaseRecord, error)
}

// Service builds reports from the record stores.
type Service struct {
	repairs   repairLister
	purchases purchaseLister
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new report service.
func NewService(log *slog.Logger, repairs repairLister, purchases purchaseLister) *Service {
	return &Service{
		repairs:   repairs,
		purchases: purchases,
		now:       time.Now,
		log:       log.With("service", "report"),
	}
}

// Query selects and orders the records of a report.
type Query struct {
	Criteria  engine.Criteria
	Sort      domain.SortKey
	Direction domain.SortDirection
}

func (q Query) normalized() Query {
	if q.Sort == "" {
		q.Sort = domain.SortKeyDate
	}
	if q.Direction == "" {
		q.Direction = domain.SortDescending
	}
	return q
}

func (q Query) storeFilter() domain.RecordListFilter {
	return domain.RecordListFilter{DateFrom: q.Criteria.DateFrom, DateTo: q.Criteria.DateTo}
}

// View is a filtered, sorted report with its summary. DeviceTypes is
// computed over the unfiltered snapshot so filter choices stay stable.
type View[R engine.Record] struct {
	Records     []R
	Summary     engine.Summary
	DeviceTypes []string
}

func buildView[R engine.Record](snapshot []R, q Query) *View[R] {
	records := engine.View(snapshot, q.Criteria, q.Sort, q.Direction)
	return &View[R]{
		Records:     records,
		Summary:     engine.Summarize(records),
		DeviceTypes: engine.DeviceTypes(snapshot),
	}
}
