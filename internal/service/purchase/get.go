package purchase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/pkg/ctxutil"
)

// Get returns a single purchase record owned by the authenticated user.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.PurchaseRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	rec, err := s.purchases.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return rec, nil
}
