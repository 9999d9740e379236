// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockErrorReporter struct {
	mock.Mock
}

func (m *MockErrorReporter) Report(err error, msg string) {
	m.Called(err, msg)
}
