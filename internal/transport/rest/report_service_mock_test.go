package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	engine "github.com/heartmarshall/itemlog-backend/internal/report"
	reportsvc "github.com/heartmarshall/itemlog-backend/internal/service/report"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	RepairViewFunc   func(ctx context.Context, q reportsvc.Query) (*reportsvc.View[domain.RepairRecord], error)
	PurchaseViewFunc func(ctx context.Context, q reportsvc.Query) (*reportsvc.View[domain.PurchaseRecord], error)
	ExportFunc       func(ctx context.Context, kind domain.RecordKind, format domain.ExportFormat, q reportsvc.Query) (*engine.Export, error)
	DashboardFunc    func(ctx context.Context) (*reportsvc.Dashboard, error)

	calls struct {
		RepairView []struct {
			Q reportsvc.Query
		}
		PurchaseView []struct {
			Q reportsvc.Query
		}
		Export []struct {
			Kind   domain.RecordKind
			Format domain.ExportFormat
			Q      reportsvc.Query
		}
		Dashboard []struct{}
	}
	lockRepairView   sync.RWMutex
	lockPurchaseView sync.RWMutex
	lockExport       sync.RWMutex
	lockDashboard    sync.RWMutex
}

func (mock *reportServiceMock) RepairView(ctx context.Context, q reportsvc.Query) (*reportsvc.View[domain.RepairRecord], error) {
	if mock.RepairViewFunc == nil {
		panic("reportServiceMock.RepairViewFunc: method is nil but reportService.RepairView was just called")
	}
	callInfo := struct {
		Q reportsvc.Query
	}{Q: q}
	mock.lockRepairView.Lock()
	mock.calls.RepairView = append(mock.calls.RepairView, callInfo)
	mock.lockRepairView.Unlock()
	return mock.RepairViewFunc(ctx, q)
}

func (mock *reportServiceMock) RepairViewCalls() []struct {
	Q reportsvc.Query
} {
	mock.lockRepairView.RLock()
	defer mock.lockRepairView.RUnlock()
	return mock.calls.RepairView
}

func (mock *reportServiceMock) PurchaseView(ctx context.Context, q reportsvc.Query) (*reportsvc.View[domain.PurchaseRecord], error) {
	if mock.PurchaseViewFunc == nil {
		panic("reportServiceMock.PurchaseViewFunc: method is nil but reportService.PurchaseView was just called")
	}
	callInfo := struct {
		Q reportsvc.Query
	}{Q: q}
	mock.lockPurchaseView.Lock()
	mock.calls.PurchaseView = append(mock.calls.PurchaseView, callInfo)
	mock.lockPurchaseView.Unlock()
	return mock.PurchaseViewFunc(ctx, q)
}

func (mock *reportServiceMock) PurchaseViewCalls() []struct {
	Q reportsvc.Query
} {
	mock.lockPurchaseView.RLock()
	defer mock.lockPurchaseView.RUnlock()
	return mock.calls.PurchaseView
}

func (mock *reportServiceMock) Export(ctx context.Context, kind domain.RecordKind, format domain.ExportFormat, q reportsvc.Query) (*engine.Export, error) {
	if mock.ExportFunc == nil {
		panic("reportServiceMock.ExportFunc: method is nil but reportService.Export was just called")
	}
	callInfo := struct {
		Kind   domain.RecordKind
		Format domain.ExportFormat
		Q      reportsvc.Query
	}{Kind: kind, Format: format, Q: q}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, callInfo)
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx, kind, format, q)
}

func (mock *reportServiceMock) ExportCalls() []struct {
	Kind   domain.RecordKind
	Format domain.ExportFormat
	Q      reportsvc.Query
} {
	mock.lockExport.RLock()
	defer mock.lockExport.RUnlock()
	return mock.calls.Export
}

func (mock *reportServiceMock) Dashboard(ctx context.Context) (*reportsvc.Dashboard, error) {
	if mock.DashboardFunc == nil {
		panic("reportServiceMock.DashboardFunc: method is nil but reportService.Dashboard was just called")
	}
	callInfo := struct{}{}
	mock.lockDashboard.Lock()
	mock.calls.Dashboard = append(mock.calls.Dashboard, callInfo)
	mock.lockDashboard.Unlock()
	return mock.DashboardFunc(ctx)
}

func (mock *reportServiceMock) DashboardCalls() []struct{} {
	mock.lockDashboard.RLock()
	defer mock.lockDashboard.RUnlock()
	return mock.calls.Dashboard
}
