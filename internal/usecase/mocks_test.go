package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/onboard-desk/internal/entity"
	"github.com/xavierca1/onboard-desk/internal/infra/docgen"
	"github.com/xavierca1/onboard-desk/internal/infra/queue"
)

// MockResolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) FindByEmail(ctx context.Context, email string) (int, *entity.ClientRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(1) == nil {
		return args.Int(0), nil, args.Error(2)
	}
	return args.Int(0), args.Get(1).(*entity.ClientRecord), args.Error(2)
}

// MockStore
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, rec *entity.ClientRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockStore) Patch(ctx context.Context, rowIndex int, fields map[string]string) error {
	args := m.Called(ctx, rowIndex, fields)
	return args.Error(0)
}

// MockNotifyProducer
type MockNotifyProducer struct {
	mock.Mock
}

func (m *MockNotifyProducer) PublishNotify(ctx context.Context, payload queue.NotifyPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockRenderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(data docgen.ContractData) ([]byte, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
