package mocks

import (
	"context"

	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/konekte/resourcehub/backend/internal/domain/repositories"
	"github.com/stretchr/testify/mock"
)

// MockServiceProviderRepository is a testify mock of repositories.ServiceProviderRepository.
type MockServiceProviderRepository struct {
	mock.Mock
}

type MockServiceProviderRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockServiceProviderRepository) EXPECT() *MockServiceProviderRepository_Expecter {
	return &MockServiceProviderRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, provider
func (_m *MockServiceProviderRepository) Create(ctx context.Context, provider *entities.ServiceProvider) error {
	ret := _m.Called(ctx, provider)

	return ret.Error(0)
}

type MockServiceProviderRepository_Create_Call struct {
	*mock.Call
}

func (_e *MockServiceProviderRepository_Expecter) Create(ctx interface{}, provider interface{}) *MockServiceProviderRepository_Create_Call {
	return &MockServiceProviderRepository_Create_Call{Call: _e.mock.On("Create", ctx, provider)}
}

func (_c *MockServiceProviderRepository_Create_Call) Run(run func(ctx context.Context, provider *entities.ServiceProvider)) *MockServiceProviderRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entities.ServiceProvider))
	})
	return _c
}

func (_c *MockServiceProviderRepository_Create_Call) Return(_a0 error) *MockServiceProviderRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockServiceProviderRepository) GetByID(ctx context.Context, id string) (*entities.ServiceProvider, error) {
	ret := _m.Called(ctx, id)

	var r0 *entities.ServiceProvider
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entities.ServiceProvider)
	}
	return r0, ret.Error(1)
}

type MockServiceProviderRepository_GetByID_Call struct {
	*mock.Call
}

func (_e *MockServiceProviderRepository_Expecter) GetByID(ctx interface{}, id interface{}) *MockServiceProviderRepository_GetByID_Call {
	return &MockServiceProviderRepository_GetByID_Call{Call: _e.mock.On("GetByID", ctx, id)}
}

func (_c *MockServiceProviderRepository_GetByID_Call) Run(run func(ctx context.Context, id string)) *MockServiceProviderRepository_GetByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockServiceProviderRepository_GetByID_Call) Return(_a0 *entities.ServiceProvider, _a1 error) *MockServiceProviderRepository_GetByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// GetByIDs provides a mock function with given fields: ctx, ids
func (_m *MockServiceProviderRepository) GetByIDs(ctx context.Context, ids []string) ([]*entities.ServiceProvider, error) {
	ret := _m.Called(ctx, ids)

	var r0 []*entities.ServiceProvider
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entities.ServiceProvider)
	}
	return r0, ret.Error(1)
}

type MockServiceProviderRepository_GetByIDs_Call struct {
	*mock.Call
}

func (_e *MockServiceProviderRepository_Expecter) GetByIDs(ctx interface{}, ids interface{}) *MockServiceProviderRepository_GetByIDs_Call {
	return &MockServiceProviderRepository_GetByIDs_Call{Call: _e.mock.On("GetByIDs", ctx, ids)}
}

func (_c *MockServiceProviderRepository_GetByIDs_Call) Run(run func(ctx context.Context, ids []string)) *MockServiceProviderRepository_GetByIDs_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]string))
	})
	return _c
}

func (_c *MockServiceProviderRepository_GetByIDs_Call) Return(_a0 []*entities.ServiceProvider, _a1 error) *MockServiceProviderRepository_GetByIDs_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockServiceProviderRepository) List(ctx context.Context, filter repositories.ServiceProviderFilter) ([]*entities.ServiceProvider, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*entities.ServiceProvider
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entities.ServiceProvider)
	}
	return r0, ret.Error(1)
}

type MockServiceProviderRepository_List_Call struct {
	*mock.Call
}

func (_e *MockServiceProviderRepository_Expecter) List(ctx interface{}, filter interface{}) *MockServiceProviderRepository_List_Call {
	return &MockServiceProviderRepository_List_Call{Call: _e.mock.On("List", ctx, filter)}
}

func (_c *MockServiceProviderRepository_List_Call) Run(run func(ctx context.Context, filter repositories.ServiceProviderFilter)) *MockServiceProviderRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(repositories.ServiceProviderFilter))
	})
	return _c
}

func (_c *MockServiceProviderRepository_List_Call) Return(_a0 []*entities.ServiceProvider, _a1 error) *MockServiceProviderRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Update provides a mock function with given fields: ctx, provider
func (_m *MockServiceProviderRepository) Update(ctx context.Context, provider *entities.ServiceProvider) error {
	ret := _m.Called(ctx, provider)

	return ret.Error(0)
}

type MockServiceProviderRepository_Update_Call struct {
	*mock.Call
}

func (_e *MockServiceProviderRepository_Expecter) Update(ctx interface{}, provider interface{}) *MockServiceProviderRepository_Update_Call {
	return &MockServiceProviderRepository_Update_Call{Call: _e.mock.On("Update", ctx, provider)}
}

func (_c *MockServiceProviderRepository_Update_Call) Run(run func(ctx context.Context, provider *entities.ServiceProvider)) *MockServiceProviderRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entities.ServiceProvider))
	})
	return _c
}

func (_c *MockServiceProviderRepository_Update_Call) Return(_a0 error) *MockServiceProviderRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockServiceProviderRepository) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

type MockServiceProviderRepository_Delete_Call struct {
	*mock.Call
}

func (_e *MockServiceProviderRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockServiceProviderRepository_Delete_Call {
	return &MockServiceProviderRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockServiceProviderRepository_Delete_Call) Run(run func(ctx context.Context, id string)) *MockServiceProviderRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockServiceProviderRepository_Delete_Call) Return(_a0 error) *MockServiceProviderRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewMockServiceProviderRepository creates a new instance of MockServiceProviderRepository and asserts its expectations on cleanup.
func NewMockServiceProviderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockServiceProviderRepository {
	m := &MockServiceProviderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
