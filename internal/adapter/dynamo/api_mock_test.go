package dynamo

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// apiMock is a hand-written mock of API.
type apiMock struct {
	PutItemFunc       func(ctx context.Context, in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	GetItemFunc       func(ctx context.Context, in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	DeleteItemFunc    func(ctx context.Context, in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	ScanFunc          func(ctx context.Context, in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	QueryFunc         func(ctx context.Context, in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	DescribeTableFunc func(ctx context.Context, in *dynamodb.DescribeTableInput) (*dynamodb.DescribeTableOutput, error)

	calls struct {
		PutItem    []*dynamodb.PutItemInput
		GetItem    []*dynamodb.GetItemInput
		DeleteItem []*dynamodb.DeleteItemInput
		Scan       []*dynamodb.ScanInput
		Query      []*dynamodb.QueryInput
	}
	lock sync.RWMutex
}

func (m *apiMock) PutItem(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if m.PutItemFunc == nil {
		panic("apiMock.PutItemFunc: method is nil but PutItem was just called")
	}
	m.lock.Lock()
	m.calls.PutItem = append(m.calls.PutItem, in)
	m.lock.Unlock()
	return m.PutItemFunc(ctx, in)
}

func (m *apiMock) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if m.GetItemFunc == nil {
		panic("apiMock.GetItemFunc: method is nil but GetItem was just called")
	}
	m.lock.Lock()
	m.calls.GetItem = append(m.calls.GetItem, in)
	m.lock.Unlock()
	return m.GetItemFunc(ctx, in)
}

func (m *apiMock) DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if m.DeleteItemFunc == nil {
		panic("apiMock.DeleteItemFunc: method is nil but DeleteItem was just called")
	}
	m.lock.Lock()
	m.calls.DeleteItem = append(m.calls.DeleteItem, in)
	m.lock.Unlock()
	return m.DeleteItemFunc(ctx, in)
}

func (m *apiMock) Scan(ctx context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if m.ScanFunc == nil {
		panic("apiMock.ScanFunc: method is nil but Scan was just called")
	}
	m.lock.Lock()
	m.calls.Scan = append(m.calls.Scan, in)
	m.lock.Unlock()
	return m.ScanFunc(ctx, in)
}

func (m *apiMock) Query(ctx context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if m.QueryFunc == nil {
		panic("apiMock.QueryFunc: method is nil but Query was just called")
	}
	m.lock.Lock()
	m.calls.Query = append(m.calls.Query, in)
	m.lock.Unlock()
	return m.QueryFunc(ctx, in)
}

func (m *apiMock) DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if m.DescribeTableFunc == nil {
		panic("apiMock.DescribeTableFunc: method is nil but DescribeTable was just called")
	}
	return m.DescribeTableFunc(ctx, in)
}

// PutItemCalls returns the recorded PutItem inputs.
func (m *apiMock) PutItemCalls() []*dynamodb.PutItemInput {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.PutItem
}

// ScanCalls returns the recorded Scan inputs.
func (m *apiMock) ScanCalls() []*dynamodb.ScanInput {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Scan
}

// QueryCalls returns the recorded Query inputs.
func (m *apiMock) QueryCalls() []*dynamodb.QueryInput {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Query
}

// DeleteItemCalls returns the recorded DeleteItem inputs.
func (m *apiMock) DeleteItemCalls() []*dynamodb.DeleteItemInput {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.DeleteItem
}
