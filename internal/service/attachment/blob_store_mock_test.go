package attachment

import (
	"context"
	"io"
	"sync"
)

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	UploadFunc     func(ctx context.Context, key, contentType string, body io.ReadSeeker, size int64) (string, error)
	DeleteFunc     func(ctx context.Context, key string) error
	KeyFromURLFunc func(raw string) (string, error)

	calls struct {
		Upload []struct {
			Key         string
			ContentType string
			Size        int64
		}
		Delete []struct {
			Key string
		}
		KeyFromURL []struct {
			Raw string
		}
	}
	lockUpload     sync.RWMutex
	lockDelete     sync.RWMutex
	lockKeyFromURL sync.RWMutex
}

func (mock *blobStoreMock) Upload(ctx context.Context, key, contentType string, body io.ReadSeeker, size int64) (string, error) {
	if mock.UploadFunc == nil {
		panic("blobStoreMock.UploadFunc: method is nil but blobStore.Upload was just called")
	}
	callInfo := struct {
		Key         string
		ContentType string
		Size        int64
	}{Key: key, ContentType: contentType, Size: size}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, key, contentType, body, size)
}

func (mock *blobStoreMock) UploadCalls() []struct {
	Key         string
	ContentType string
	Size        int64
} {
	mock.lockUpload.RLock()
	defer mock.lockUpload.RUnlock()
	return mock.calls.Upload
}

func (mock *blobStoreMock) Delete(ctx context.Context, key string) error {
	if mock.DeleteFunc == nil {
		panic("blobStoreMock.DeleteFunc: method is nil but blobStore.Delete was just called")
	}
	callInfo := struct {
		Key string
	}{Key: key}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *blobStoreMock) DeleteCalls() []struct {
	Key string
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

func (mock *blobStoreMock) KeyFromURL(raw string) (string, error) {
	if mock.KeyFromURLFunc == nil {
		panic("blobStoreMock.KeyFromURLFunc: method is nil but blobStore.KeyFromURL was just called")
	}
	callInfo := struct {
		Raw string
	}{Raw: raw}
	mock.lockKeyFromURL.Lock()
	mock.calls.KeyFromURL = append(mock.calls.KeyFromURL, callInfo)
	mock.lockKeyFromURL.Unlock()
	return mock.KeyFromURLFunc(raw)
}

func (mock *blobStoreMock) KeyFromURLCalls() []struct {
	Raw string
} {
	mock.lockKeyFromURL.RLock()
	defer mock.lockKeyFromURL.RUnlock()
	return mock.calls.KeyFromURL
}
