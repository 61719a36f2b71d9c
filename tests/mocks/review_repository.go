package mocks

import (
	"context"

	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/konekte/resourcehub/backend/internal/domain/repositories"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a testify mock of repositories.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

type MockReviewRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReviewRepository) EXPECT() *MockReviewRepository_Expecter {
	return &MockReviewRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, review
func (_m *MockReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	ret := _m.Called(ctx, review)

	return ret.Error(0)
}

type MockReviewRepository_Create_Call struct {
	*mock.Call
}

func (_e *MockReviewRepository_Expecter) Create(ctx interface{}, review interface{}) *MockReviewRepository_Create_Call {
	return &MockReviewRepository_Create_Call{Call: _e.mock.On("Create", ctx, review)}
}

func (_c *MockReviewRepository_Create_Call) Run(run func(ctx context.Context, review *entities.Review)) *MockReviewRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entities.Review))
	})
	return _c
}

func (_c *MockReviewRepository_Create_Call) Return(_a0 error) *MockReviewRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockReviewRepository) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	ret := _m.Called(ctx, id)

	var r0 *entities.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entities.Review)
	}
	return r0, ret.Error(1)
}

type MockReviewRepository_GetByID_Call struct {
	*mock.Call
}

func (_e *MockReviewRepository_Expecter) GetByID(ctx interface{}, id interface{}) *MockReviewRepository_GetByID_Call {
	return &MockReviewRepository_GetByID_Call{Call: _e.mock.On("GetByID", ctx, id)}
}

func (_c *MockReviewRepository_GetByID_Call) Run(run func(ctx context.Context, id string)) *MockReviewRepository_GetByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockReviewRepository_GetByID_Call) Return(_a0 *entities.Review, _a1 error) *MockReviewRepository_GetByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockReviewRepository) List(ctx context.Context, filter repositories.ReviewFilter) ([]*entities.Review, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*entities.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entities.Review)
	}
	return r0, ret.Error(1)
}

type MockReviewRepository_List_Call struct {
	*mock.Call
}

func (_e *MockReviewRepository_Expecter) List(ctx interface{}, filter interface{}) *MockReviewRepository_List_Call {
	return &MockReviewRepository_List_Call{Call: _e.mock.On("List", ctx, filter)}
}

func (_c *MockReviewRepository_List_Call) Run(run func(ctx context.Context, filter repositories.ReviewFilter)) *MockReviewRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(repositories.ReviewFilter))
	})
	return _c
}

func (_c *MockReviewRepository_List_Call) Return(_a0 []*entities.Review, _a1 error) *MockReviewRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Update provides a mock function with given fields: ctx, review
func (_m *MockReviewRepository) Update(ctx context.Context, review *entities.Review) error {
	ret := _m.Called(ctx, review)

	return ret.Error(0)
}

type MockReviewRepository_Update_Call struct {
	*mock.Call
}

func (_e *MockReviewRepository_Expecter) Update(ctx interface{}, review interface{}) *MockReviewRepository_Update_Call {
	return &MockReviewRepository_Update_Call{Call: _e.mock.On("Update", ctx, review)}
}

func (_c *MockReviewRepository_Update_Call) Run(run func(ctx context.Context, review *entities.Review)) *MockReviewRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entities.Review))
	})
	return _c
}

func (_c *MockReviewRepository_Update_Call) Return(_a0 error) *MockReviewRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockReviewRepository) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

type MockReviewRepository_Delete_Call struct {
	*mock.Call
}

func (_e *MockReviewRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockReviewRepository_Delete_Call {
	return &MockReviewRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockReviewRepository_Delete_Call) Run(run func(ctx context.Context, id string)) *MockReviewRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockReviewRepository_Delete_Call) Return(_a0 error) *MockReviewRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewMockReviewRepository creates a new instance of MockReviewRepository and asserts its expectations on cleanup.
func NewMockReviewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
