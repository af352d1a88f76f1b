package catalog

import (
	"context"
	"sync"
)

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	UploadFunc func(ctx context.Context, data []byte) (string, string, error)

	calls struct {
		Upload []struct{ Data []byte }
	}
	lockUpload sync.RWMutex
}

func (mock *blobStoreMock) Upload(ctx context.Context, data []byte) (string, string, error) {
	if mock.UploadFunc == nil {
		panic("blobStoreMock.UploadFunc: method is nil but blobStore.Upload was just called")
	}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, struct{ Data []byte }{Data: data})
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, data)
}

func (mock *blobStoreMock) UploadCalls() []struct{ Data []byte } {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}
