package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/internal/service/attachment"
)

var _ attachmentService = &attachmentServiceMock{}

type attachmentServiceMock struct {
	UploadBatchFunc func(ctx context.Context, kind domain.RecordKind, files []attachment.File) (*attachment.UploadResult, error)

	calls struct {
		UploadBatch []struct {
			Kind  domain.RecordKind
			Files []attachment.File
		}
	}
	lockUploadBatch sync.RWMutex
}

func (mock *attachmentServiceMock) UploadBatch(ctx context.Context, kind domain.RecordKind, files []attachment.File) (*attachment.UploadResult, error) {
	if mock.UploadBatchFunc == nil {
		panic("attachmentServiceMock.UploadBatchFunc: method is nil but attachmentService.UploadBatch was just called")
	}
	callInfo := struct {
		Kind  domain.RecordKind
		Files []attachment.File
	}{Kind: kind, Files: files}
	mock.lockUploadBatch.Lock()
	mock.calls.UploadBatch = append(mock.calls.UploadBatch, callInfo)
	mock.lockUploadBatch.Unlock()
	return mock.UploadBatchFunc(ctx, kind, files)
}

func (mock *attachmentServiceMock) UploadBatchCalls() []struct {
	Kind  domain.RecordKind
	Files []attachment.File
} {
	mock.lockUploadBatch.RLock()
	defer mock.lockUploadBatch.RUnlock()
	return mock.calls.UploadBatch
}
