package repair

import (
	"context"
	"sync"
)

var _ attachmentReclaimer = &attachmentReclaimerMock{}

type attachmentReclaimerMock struct {
	ReclaimFunc func(ctx context.Context, urls []string) int

	calls struct {
		Reclaim []struct {
			URLs []string
		}
	}
	lockReclaim sync.RWMutex
}

func (mock *attachmentReclaimerMock) Reclaim(ctx context.Context, urls []string) int {
	if mock.ReclaimFunc == nil {
		panic("attachmentReclaimerMock.ReclaimFunc: method is nil but attachmentReclaimer.Reclaim was just called")
	}
	callInfo := struct {
		URLs []string
	}{URLs: urls}
	mock.lockReclaim.Lock()
	mock.calls.Reclaim = append(mock.calls.Reclaim, callInfo)
	mock.lockReclaim.Unlock()
	return mock.ReclaimFunc(ctx, urls)
}

func (mock *attachmentReclaimerMock) ReclaimCalls() []struct {
	URLs []string
} {
	mock.lockReclaim.RLock()
	defer mock.lockReclaim.RUnlock()
	return mock.calls.Reclaim
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}
