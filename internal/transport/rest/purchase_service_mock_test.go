package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/internal/service/purchase"
)

var _ purchaseService = &purchaseServiceMock{}

type purchaseServiceMock struct {
	ListFunc   func(ctx context.Context, input purchase.ListInput) ([]domain.PurchaseRecord, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.PurchaseRecord, error)
	CreateFunc func(ctx context.Context, input purchase.RecordInput) (*domain.PurchaseRecord, error)
	UpdateFunc func(ctx context.Context, input purchase.UpdateInput) (*domain.PurchaseRecord, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Input purchase.ListInput
		}
		Get []struct {
			Id uuid.UUID
		}
		Create []struct {
			Input purchase.RecordInput
		}
		Update []struct {
			Input purchase.UpdateInput
		}
		Delete []struct {
			Id uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *purchaseServiceMock) List(ctx context.Context, input purchase.ListInput) ([]domain.PurchaseRecord, error) {
	if mock.ListFunc == nil {
		panic("purchaseServiceMock.ListFunc: method is nil but purchaseService.List was just called")
	}
	callInfo := struct {
		Input purchase.ListInput
	}{Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *purchaseServiceMock) ListCalls() []struct {
	Input purchase.ListInput
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *purchaseServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.PurchaseRecord, error) {
	if mock.GetFunc == nil {
		panic("purchaseServiceMock.GetFunc: method is nil but purchaseService.Get was just called")
	}
	callInfo := struct {
		Id uuid.UUID
	}{Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *purchaseServiceMock) GetCalls() []struct {
	Id uuid.UUID
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *purchaseServiceMock) Create(ctx context.Context, input purchase.RecordInput) (*domain.PurchaseRecord, error) {
	if mock.CreateFunc == nil {
		panic("purchaseServiceMock.CreateFunc: method is nil but purchaseService.Create was just called")
	}
	callInfo := struct {
		Input purchase.RecordInput
	}{Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *purchaseServiceMock) CreateCalls() []struct {
	Input purchase.RecordInput
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *purchaseServiceMock) Update(ctx context.Context, input purchase.UpdateInput) (*domain.PurchaseRecord, error) {
	if mock.UpdateFunc == nil {
		panic("purchaseServiceMock.UpdateFunc: method is nil but purchaseService.Update was just called")
	}
	callInfo := struct {
		Input purchase.UpdateInput
	}{Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *purchaseServiceMock) UpdateCalls() []struct {
	Input purchase.UpdateInput
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *purchaseServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("purchaseServiceMock.DeleteFunc: method is nil but purchaseService.Delete was just called")
	}
	callInfo := struct {
		Id uuid.UUID
	}{Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *purchaseServiceMock) DeleteCalls() []struct {
	Id uuid.UUID
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}
