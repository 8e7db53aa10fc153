package repair

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/pkg/ctxutil"
)

// Create stores a new repair record for the authenticated user.
func (s *Service) Create(ctx context.Context, input RecordInput) (*domain.RepairRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	fields, err := input.fields(s.opts.MaxAttachments)
	if err != nil {
		return nil, err
	}

	rec, err := s.repairs.Create(ctx, userID, fields)
	if err != nil {
		return nil, fmt.Errorf("create repair: %w", err)
	}

	s.log.InfoContext(ctx, "repair created",
		slog.String("user_id", userID.String()),
		slog.String("repair_id", rec.ID.String()),
		slog.String("status", rec.Status.String()),
	)

	return rec, nil
}
