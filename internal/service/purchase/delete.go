package purchase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/pkg/ctxutil"
)

// Delete removes a purchase record. Deleting a record that is already gone
// succeeds.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	rec, err := s.purchases.Delete(ctx, userID, id)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.InfoContext(ctx, "purchase already deleted",
			slog.String("user_id", userID.String()),
			slog.String("purchase_id", id.String()),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}

	s.reclaim(ctx, rec.Attachments)

	s.log.InfoContext(ctx, "purchase deleted",
		slog.String("user_id", userID.String()),
		slog.String("purchase_id", id.String()),
	)

	return nil
}
