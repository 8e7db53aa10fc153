package purchase

import (
	"context"
	"fmt"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/internal/report"
	"github.com/heartmarshall/itemlog-backend/pkg/ctxutil"
)

// List returns the user's purchase records filtered and sorted per input.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.PurchaseRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.purchases.List(ctx, userID, domain.RecordListFilter{
		DateFrom: input.Criteria.DateFrom,
		DateTo:   input.Criteria.DateTo,
	})
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	return report.View(records, input.Criteria, input.sortKey(), input.direction()), nil
}
