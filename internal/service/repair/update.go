package repair

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/pkg/ctxutil"
)

// Update replaces every editable field of an existing repair record.
// Attachments dropped by the update are reclaimed after commit.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.RepairRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.ID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	fields, err := input.Record.fields(s.opts.MaxAttachments)
	if err != nil {
		return nil, err
	}

	var (
		updated *domain.RepairRecord
		removed []string
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.repairs.GetByID(txCtx, userID, input.ID)
		if getErr != nil {
			return fmt.Errorf("get repair: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.repairs.Update(txCtx, userID, input.ID, fields)
		if updateErr != nil {
			return fmt.Errorf("update repair: %w", updateErr)
		}

		removed = dropped(old.Attachments, updated.Attachments)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.reclaim(ctx, removed)

	s.log.InfoContext(ctx, "repair updated",
		slog.String("user_id", userID.String()),
		slog.String("repair_id", input.ID.String()),
		slog.Int("attachments_dropped", len(removed)),
	)

	return updated, nil
}
