// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockListingUpdater struct {
	mock.Mock
}

func (m *MockListingUpdater) Update(ctx context.Context, body string) error {
	args := m.Called(ctx, body)
	return args.Error(0)
}
