// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Save(ctx context.Context, snap *model.StoreSnapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

func (m *MockSnapshotRepository) Latest(ctx context.Context) (*model.StoreSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoreSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) List(ctx context.Context, limit int) ([]model.StoreSnapshot, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StoreSnapshot), args.Error(1)
}
