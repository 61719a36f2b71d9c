package mocks

import (
	"context"

	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, user
func (_m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

type MockUserRepository_Create_Call struct {
	*mock.Call
}

func (_e *MockUserRepository_Expecter) Create(ctx interface{}, user interface{}) *MockUserRepository_Create_Call {
	return &MockUserRepository_Create_Call{Call: _e.mock.On("Create", ctx, user)}
}

func (_c *MockUserRepository_Create_Call) Run(run func(ctx context.Context, user *entities.User)) *MockUserRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entities.User))
	})
	return _c
}

func (_c *MockUserRepository_Create_Call) Return(_a0 error) *MockUserRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *entities.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entities.User)
	}
	return r0, ret.Error(1)
}

type MockUserRepository_GetByID_Call struct {
	*mock.Call
}

func (_e *MockUserRepository_Expecter) GetByID(ctx interface{}, id interface{}) *MockUserRepository_GetByID_Call {
	return &MockUserRepository_GetByID_Call{Call: _e.mock.On("GetByID", ctx, id)}
}

func (_c *MockUserRepository_GetByID_Call) Run(run func(ctx context.Context, id string)) *MockUserRepository_GetByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockUserRepository_GetByID_Call) Return(_a0 *entities.User, _a1 error) *MockUserRepository_GetByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// GetByIDs provides a mock function with given fields: ctx, ids
func (_m *MockUserRepository) GetByIDs(ctx context.Context, ids []string) ([]*entities.User, error) {
	ret := _m.Called(ctx, ids)

	var r0 []*entities.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entities.User)
	}
	return r0, ret.Error(1)
}

type MockUserRepository_GetByIDs_Call struct {
	*mock.Call
}

func (_e *MockUserRepository_Expecter) GetByIDs(ctx interface{}, ids interface{}) *MockUserRepository_GetByIDs_Call {
	return &MockUserRepository_GetByIDs_Call{Call: _e.mock.On("GetByIDs", ctx, ids)}
}

func (_c *MockUserRepository_GetByIDs_Call) Run(run func(ctx context.Context, ids []string)) *MockUserRepository_GetByIDs_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]string))
	})
	return _c
}

func (_c *MockUserRepository_GetByIDs_Call) Return(_a0 []*entities.User, _a1 error) *MockUserRepository_GetByIDs_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// List provides a mock function with given fields: ctx
func (_m *MockUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	ret := _m.Called(ctx)

	var r0 []*entities.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entities.User)
	}
	return r0, ret.Error(1)
}

type MockUserRepository_List_Call struct {
	*mock.Call
}

func (_e *MockUserRepository_Expecter) List(ctx interface{}) *MockUserRepository_List_Call {
	return &MockUserRepository_List_Call{Call: _e.mock.On("List", ctx)}
}

func (_c *MockUserRepository_List_Call) Run(run func(ctx context.Context)) *MockUserRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockUserRepository_List_Call) Return(_a0 []*entities.User, _a1 error) *MockUserRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Update provides a mock function with given fields: ctx, user
func (_m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

type MockUserRepository_Update_Call struct {
	*mock.Call
}

func (_e *MockUserRepository_Expecter) Update(ctx interface{}, user interface{}) *MockUserRepository_Update_Call {
	return &MockUserRepository_Update_Call{Call: _e.mock.On("Update", ctx, user)}
}

func (_c *MockUserRepository_Update_Call) Run(run func(ctx context.Context, user *entities.User)) *MockUserRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entities.User))
	})
	return _c
}

func (_c *MockUserRepository_Update_Call) Return(_a0 error) *MockUserRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockUserRepository) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

type MockUserRepository_Delete_Call struct {
	*mock.Call
}

func (_e *MockUserRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockUserRepository_Delete_Call {
	return &MockUserRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockUserRepository_Delete_Call) Run(run func(ctx context.Context, id string)) *MockUserRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockUserRepository_Delete_Call) Return(_a0 error) *MockUserRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewMockUserRepository creates a new instance of MockUserRepository and asserts its expectations on cleanup.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
