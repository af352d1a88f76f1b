package tracking

import (
	"context"
	"sync"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

var _ downloadRepo = &downloadRepoMock{}

type downloadRepoMock struct {
	AppendFunc    func(ctx context.Context, ev domain.DownloadEvent) (string, error)
	ListByUIDFunc func(ctx context.Context, uid string) ([]domain.DownloadEvent, error)

	calls struct {
		Append    []struct{ Ev domain.DownloadEvent }
		ListByUID []struct{ UID string }
	}
	lockAppend    sync.RWMutex
	lockListByUID sync.RWMutex
}

func (mock *downloadRepoMock) Append(ctx context.Context, ev domain.DownloadEvent) (string, error) {
	if mock.AppendFunc == nil {
		panic("downloadRepoMock.AppendFunc: method is nil but downloadRepo.Append was just called")
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, struct{ Ev domain.DownloadEvent }{Ev: ev})
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, ev)
}

func (mock *downloadRepoMock) AppendCalls() []struct{ Ev domain.DownloadEvent } {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *downloadRepoMock) ListByUID(ctx context.Context, uid string) ([]domain.DownloadEvent, error) {
	if mock.ListByUIDFunc == nil {
		panic("downloadRepoMock.ListByUIDFunc: method is nil but downloadRepo.ListByUID was just called")
	}
	mock.lockListByUID.Lock()
	mock.calls.ListByUID = append(mock.calls.ListByUID, struct{ UID string }{UID: uid})
	mock.lockListByUID.Unlock()
	return mock.ListByUIDFunc(ctx, uid)
}

func (mock *downloadRepoMock) ListByUIDCalls() []struct{ UID string } {
	mock.lockListByUID.RLock()
	calls := mock.calls.ListByUID
	mock.lockListByUID.RUnlock()
	return calls
}
