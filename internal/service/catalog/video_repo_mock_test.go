package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

var _ videoRepo = &videoRepoMock{}

type videoRepoMock struct {
	CreateFunc  func(ctx context.Context, v domain.Video) error
	ListFunc    func(ctx context.Context) ([]domain.Video, error)
	GetByIDFunc func(ctx context.Context, id string) (domain.Video, error)
	UpdateFunc  func(ctx context.Context, v domain.Video) error
	DeleteFunc  func(ctx context.Context, id string) error

	calls struct {
		Create  []struct{ V domain.Video }
		List    []struct{}
		GetByID []struct{ ID string }
		Update  []struct{ V domain.Video }
		Delete  []struct{ ID string }
	}
	lockCreate  sync.RWMutex
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *videoRepoMock) Create(ctx context.Context, v domain.Video) error {
	if mock.CreateFunc == nil {
		panic("videoRepoMock.CreateFunc: method is nil but videoRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ V domain.Video }{V: v})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *videoRepoMock) CreateCalls() []struct{ V domain.Video } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *videoRepoMock) List(ctx context.Context) ([]domain.Video, error) {
	if mock.ListFunc == nil {
		panic("videoRepoMock.ListFunc: method is nil but videoRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *videoRepoMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *videoRepoMock) GetByID(ctx context.Context, id string) (domain.Video, error) {
	if mock.GetByIDFunc == nil {
		panic("videoRepoMock.GetByIDFunc: method is nil but videoRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID string }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *videoRepoMock) GetByIDCalls() []struct{ ID string } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *videoRepoMock) Update(ctx context.Context, v domain.Video) error {
	if mock.UpdateFunc == nil {
		panic("videoRepoMock.UpdateFunc: method is nil but videoRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ V domain.Video }{V: v})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, v)
}

func (mock *videoRepoMock) UpdateCalls() []struct{ V domain.Video } {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *videoRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("videoRepoMock.DeleteFunc: method is nil but videoRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID string }{ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *videoRepoMock) DeleteCalls() []struct{ ID string } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
