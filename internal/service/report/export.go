package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	engine "github.com/heartmarshall/itemlog-backend/internal/report"
	"github.com/heartmarshall/itemlog-backend/pkg/ctxutil"
)

// Export serializes the records matching q. Date bounds are pushed down to
// the store; the remaining criteria run in memory.
func (s *Service) Export(ctx context.Context, kind domain.RecordKind, format domain.ExportFormat, q Query) (*engine.Export, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be repair or purchase")
	}
	if !format.IsValid() {
		return nil, domain.NewValidationError("format", "must be csv or pdf")
	}
	q = q.normalized()

	var (
		out *engine.Export
		err error
	)
	switch kind {
	case domain.RecordKindRepair:
		records, listErr := s.repairSnapshot(ctx, userID, q.storeFilter())
		if listErr != nil {
			return nil, listErr
		}
		out, err = engine.Serialize(engine.View(records, q.Criteria, q.Sort, q.Direction), format, s.now())
	case domain.RecordKindPurchase:
		records, listErr := s.purchaseSnapshot(ctx, userID, q.storeFilter())
		if listErr != nil {
			return nil, listErr
		}
		out, err = engine.Serialize(engine.View(records, q.Criteria, q.Sort, q.Direction), format, s.now())
	}
	if err != nil {
		return nil, fmt.Errorf("serialize %s report: %w", kind, err)
	}

	s.log.InfoContext(ctx, "report exported",
		slog.String("user_id", userID.String()),
		slog.String("kind", kind.String()),
		slog.String("format", format.String()),
		slog.Int("rows", out.Rows),
	)

	return out, nil
}
