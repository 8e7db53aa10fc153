package report

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

var _ repairLister = &repairListerMock{}

type repairListerMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, filter domain.RecordListFilter) ([]domain.RepairRecord, error)

	calls struct {
		List []struct {
			UserID uuid.UUID
			Filter domain.RecordListFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *repairListerMock) List(ctx context.Context, userID uuid.UUID, filter domain.RecordListFilter) ([]domain.RepairRecord, error) {
	if mock.ListFunc == nil {
		panic("repairListerMock.ListFunc: method is nil but repairLister.List was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Filter domain.RecordListFilter
	}{UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *repairListerMock) ListCalls() []struct {
	UserID uuid.UUID
	Filter domain.RecordListFilter
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

var _ purchaseLister = &purchaseListerMock{}

type purchaseListerMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, filter domain.RecordListFilter) ([]domain.PurchaseRecord, error)

	calls struct {
		List []struct {
			UserID uuid.UUID
			Filter domain.RecordListFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *purchaseListerMock) List(ctx context.Context, userID uuid.UUID, filter domain.RecordListFilter) ([]domain.PurchaseRecord, error) {
	if mock.ListFunc == nil {
		panic("purchaseListerMock.ListFunc: method is nil but purchaseLister.List was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Filter domain.RecordListFilter
	}{UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *purchaseListerMock) ListCalls() []struct {
	UserID uuid.UUID
	Filter domain.RecordListFilter
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}
