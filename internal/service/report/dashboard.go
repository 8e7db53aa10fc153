package report

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	engine "github.com/heartmarshall/itemlog-backend/internal/report"
	"github.com/heartmarshall/itemlog-backend/pkg/ctxutil"
)

// Dashboard holds headline figures for both logs.
type Dashboard struct {
	Repairs     engine.Summary
	Purchases   engine.Summary
	DeviceTypes []string
}

// Dashboard loads both logs concurrently and summarizes them.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		repairs   []domain.RepairRecord
		purchases []domain.PurchaseRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		repairs, err = s.repairSnapshot(gctx, userID, domain.RecordListFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		purchases, err = s.purchaseSnapshot(gctx, userID, domain.RecordListFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Dashboard{
		Repairs:     engine.Summarize(repairs),
		Purchases:   engine.Summarize(purchases),
		DeviceTypes: engine.DeviceTypes(repairs),
	}, nil
}
