package mocks

import (
	"context"

	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/stretchr/testify/mock"
)

// MockEventBus is a testify mock of providers.EventBus.
type MockEventBus struct {
	mock.Mock
}

type MockEventBus_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventBus) EXPECT() *MockEventBus_Expecter {
	return &MockEventBus_Expecter{mock: &_m.Mock}
}

// Publish provides a mock function with given fields: ctx, channel, event
func (_m *MockEventBus) Publish(ctx context.Context, channel string, event *entities.DirectoryEvent) error {
	ret := _m.Called(ctx, channel, event)

	return ret.Error(0)
}

type MockEventBus_Publish_Call struct {
	*mock.Call
}

func (_e *MockEventBus_Expecter) Publish(ctx interface{}, channel interface{}, event interface{}) *MockEventBus_Publish_Call {
	return &MockEventBus_Publish_Call{Call: _e.mock.On("Publish", ctx, channel, event)}
}

func (_c *MockEventBus_Publish_Call) Run(run func(ctx context.Context, channel string, event *entities.DirectoryEvent)) *MockEventBus_Publish_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(*entities.DirectoryEvent))
	})
	return _c
}

func (_c *MockEventBus_Publish_Call) Return(_a0 error) *MockEventBus_Publish_Call {
	_c.Call.Return(_a0)
	return _c
}

// Subscribe provides a mock function with given fields: ctx, channel
func (_m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.DirectoryEvent, error) {
	ret := _m.Called(ctx, channel)

	var r0 <-chan *entities.DirectoryEvent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(<-chan *entities.DirectoryEvent)
	}
	return r0, ret.Error(1)
}

// Close provides a mock function with no fields
func (_m *MockEventBus) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

// NewMockEventBus creates a new instance of MockEventBus and asserts its expectations on cleanup.
func NewMockEventBus(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventBus {
	m := &MockEventBus{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
