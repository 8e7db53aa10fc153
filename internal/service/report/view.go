package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/pkg/ctxutil"
)

// RepairView returns the repair report for the authenticated user.
func (s *Service) RepairView(ctx context.Context, q Query) (*View[domain.RepairRecord], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	q = q.normalized()

	snapshot, err := s.repairSnapshot(ctx, userID, domain.RecordListFilter{})
	if err != nil {
		return nil, err
	}
	return buildView(snapshot, q), nil
}

// PurchaseView returns the purchase report for the authenticated user.
func (s *Service) PurchaseView(ctx context.Context, q Query) (*View[domain.PurchaseRecord], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	q = q.normalized()

	snapshot, err := s.purchaseSnapshot(ctx, userID, domain.RecordListFilter{})
	if err != nil {
		return nil, err
	}
	return buildView(snapshot, q), nil
}

func (s *Service) repairSnapshot(ctx context.Context, userID uuid.UUID, f domain.RecordListFilter) ([]domain.RepairRecord, error) {
	records, err := s.repairs.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list repairs: %w", err)
	}
	return records, nil
}

func (s *Service) purchaseSnapshot(ctx context.Context, userID uuid.UUID, f domain.RecordListFilter) ([]domain.PurchaseRecord, error) {
	records, err := s.purchases.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return records, nil
}
