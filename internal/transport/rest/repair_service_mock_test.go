package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/internal/service/repair"
)

var _ repairService = &repairServiceMock{}

type repairServiceMock struct {
	ListFunc   func(ctx context.Context, input repair.ListInput) ([]domain.RepairRecord, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.RepairRecord, error)
	CreateFunc func(ctx context.Context, input repair.RecordInput) (*domain.RepairRecord, error)
	UpdateFunc func(ctx context.Context, input repair.UpdateInput) (*domain.RepairRecord, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Input repair.ListInput
		}
		Get []struct {
			Id uuid.UUID
		}
		Create []struct {
			Input repair.RecordInput
		}
		Update []struct {
			Input repair.UpdateInput
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

func (mock *repairServiceMock) List(ctx context.Context, input repair.ListInput) ([]domain.RepairRecord, error) {
	if mock.ListFunc == nil {
		panic("repairServiceMock.ListFunc: method is nil but repairService.List was just called")
	}
	callInfo := struct {
		Input repair.ListInput
	}{Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *repairServiceMock) ListCalls() []struct {
	Input repair.ListInput
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *repairServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.RepairRecord, error) {
	if mock.GetFunc == nil {
		panic("repairServiceMock.GetFunc: method is nil but repairService.Get was just called")
	}
	callInfo := struct {
		Id uuid.UUID
	}{Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *repairServiceMock) GetCalls() []struct {
	Id uuid.UUID
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *repairServiceMock) Create(ctx context.Context, input repair.RecordInput) (*domain.RepairRecord, error) {
	if mock.CreateFunc == nil {
		panic("repairServiceMock.CreateFunc: method is nil but repairService.Create was just called")
	}
	callInfo := struct {
		Input repair.RecordInput
	}{Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *repairServiceMock) CreateCalls() []struct {
	Input repair.RecordInput
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *repairServiceMock) Update(ctx context.Context, input repair.UpdateInput) (*domain.RepairRecord, error) {
	if mock.UpdateFunc == nil {
		panic("repairServiceMock.UpdateFunc: method is nil but repairService.Update was just called")
	}
	callInfo := struct {
		Input repair.UpdateInput
	}{Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *repairServiceMock) UpdateCalls() []struct {
	Input repair.UpdateInput
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *repairServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("repairServiceMock.DeleteFunc: method is nil but repairService.Delete was just called")
	}
	callInfo := struct {
		Id uuid.UUID
	}{Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *repairServiceMock) DeleteCalls() []struct {
	Id uuid.UUID
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}
