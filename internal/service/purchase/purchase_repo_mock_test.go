package purchase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

var _ purchaseRepo = &purchaseRepoMock{}

type purchaseRepoMock struct {
	ListFunc    func(ctx context.Context, userID uuid.UUID, filter domain.RecordListFilter) ([]domain.PurchaseRecord, error)
	GetByIDFunc func(ctx context.Context, userID, id uuid.UUID) (*domain.PurchaseRecord, error)
	CreateFunc  func(ctx context.Context, userID uuid.UUID, fields domain.PurchaseFields) (*domain.PurchaseRecord, error)
	UpdateFunc  func(ctx context.Context, userID, id uuid.UUID, fields domain.PurchaseFields) (*domain.PurchaseRecord, error)
	DeleteFunc  func(ctx context.Context, userID, id uuid.UUID) (*domain.PurchaseRecord, error)

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
			Fields domain.PurchaseFields
		}
		Update []struct {
			UserID uuid.UUID
			ID     uuid.UUID
			Fields domain.PurchaseFields
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

func (mock *purchaseRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.RecordListFilter) ([]domain.PurchaseRecord, error) {
	if mock.ListFunc == nil {
		panic("purchaseRepoMock.ListFunc: method is nil but purchaseRepo.List was just called")
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

func (mock *purchaseRepoMock) ListCalls() []struct {
	UserID uuid.UUID
	Filter domain.RecordListFilter
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *purchaseRepoMock) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.PurchaseRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("purchaseRepoMock.GetByIDFunc: method is nil but purchaseRepo.GetByID was just called")
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

func (mock *purchaseRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *purchaseRepoMock) Create(ctx context.Context, userID uuid.UUID, fields domain.PurchaseFields) (*domain.PurchaseRecord, error) {
	if mock.CreateFunc == nil {
		panic("purchaseRepoMock.CreateFunc: method is nil but purchaseRepo.Create was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Fields domain.PurchaseFields
	}{UserID: userID, Fields: fields}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, fields)
}

func (mock *purchaseRepoMock) CreateCalls() []struct {
	UserID uuid.UUID
	Fields domain.PurchaseFields
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *purchaseRepoMock) Update(ctx context.Context, userID, id uuid.UUID, fields domain.PurchaseFields) (*domain.PurchaseRecord, error) {
	if mock.UpdateFunc == nil {
		panic("purchaseRepoMock.UpdateFunc: method is nil but purchaseRepo.Update was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     uuid.UUID
		Fields domain.PurchaseFields
	}{UserID: userID, ID: id, Fields: fields}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, fields)
}

func (mock *purchaseRepoMock) UpdateCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Fields domain.PurchaseFields
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *purchaseRepoMock) Delete(ctx context.Context, userID, id uuid.UUID) (*domain.PurchaseRecord, error) {
	if mock.DeleteFunc == nil {
		panic("purchaseRepoMock.DeleteFunc: method is nil but purchaseRepo.Delete was just called")
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

func (mock *purchaseRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}
