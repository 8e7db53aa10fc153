package repair

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

var _ repairRepo = &repairRepoMock{}

type repairRepoMock struct {
	ListFunc    func(ctx context.Context, userID uuid.UUID, filter domain.RecordListFilter) ([]domain.RepairRecord, error)
	GetByIDFunc func(ctx context.Context, userID, id uuid.UUID) (*domain.RepairRecord, error)
	CreateFunc  func(ctx context.Context, userID uuid.UUID, fields domain.RepairFields) (*domain.RepairRecord, error)
	UpdateFunc  func(ctx context.Context, userID, id uuid.UUID, fields domain.RepairFields) (*domain.RepairRecord, error)
	DeleteFunc  func(ctx context.Context, userID, id uuid.UUID) (*domain.RepairRecord, error)

	calls struct {
		List []struct {
			UserID uuid.UUID
			Filter domain.RecordListFilter
		}
		GetByID []struct {
			UserID uuid.UUID
			ID     uuid.UUID
		}
		Create []struct {
			UserID uuid.UUID
			Fields domain.RepairFields
		}
		Update []struct {
			UserID uuid.UUID
			ID     uuid.UUID
			Fields domain.RepairFields
		}
		Delete []struct {
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *repairRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.RecordListFilter) ([]domain.RepairRecord, error) {
	if mock.ListFunc == nil {
		panic("repairRepoMock.ListFunc: method is nil but repairRepo.List was just called")
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

func (mock *repairRepoMock) ListCalls() []struct {
	UserID uuid.UUID
	Filter domain.RecordListFilter
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *repairRepoMock) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.RepairRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("repairRepoMock.GetByIDFunc: method is nil but repairRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     uuid.UUID
	}{UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *repairRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *repairRepoMock) Create(ctx context.Context, userID uuid.UUID, fields domain.RepairFields) (*domain.RepairRecord, error) {
	if mock.CreateFunc == nil {
		panic("repairRepoMock.CreateFunc: method is nil but repairRepo.Create was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Fields domain.RepairFields
	}{UserID: userID, Fields: fields}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, fields)
}

func (mock *repairRepoMock) CreateCalls() []struct {
	UserID uuid.UUID
	Fields domain.RepairFields
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *repairRepoMock) Update(ctx context.Context, userID, id uuid.UUID, fields domain.RepairFields) (*domain.RepairRecord, error) {
	if mock.UpdateFunc == nil {
		panic("repairRepoMock.UpdateFunc: method is nil but repairRepo.Update was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     uuid.UUID
		Fields domain.RepairFields
	}{UserID: userID, ID: id, Fields: fields}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, fields)
}

func (mock *repairRepoMock) UpdateCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Fields domain.RepairFields
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *repairRepoMock) Delete(ctx context.Context, userID, id uuid.UUID) (*domain.RepairRecord, error) {
	if mock.DeleteFunc == nil {
		panic("repairRepoMock.DeleteFunc: method is nil but repairRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     uuid.UUID
	}{UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *repairRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}
