package purchase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/pkg/ctxutil"
)

// Create stores a new purchase record for the authenticated user.
func (s *Service) Create(ctx context.Context, input RecordInput) (*domain.PurchaseRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	fields, err := input.fields(s.opts.MaxAttachments)
	if err != nil {
		return nil, err
	}

	rec, err := s.purchases.Create(ctx, userID, fields)
	if err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}

	s.log.InfoContext(ctx, "purchase created",
		slog.String("user_id", userID.String()),
		slog.String("purchase_id", rec.ID.String()),
		slog.String("item_name", rec.ItemName),
	)

	return rec, nil
}
