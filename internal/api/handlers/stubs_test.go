package handlers_test

import (
	"context"
	"errors"

	"github.com/konekte/resourcehub/backend/internal/application/services"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
)

var errNotStubbed = errors.New("not stubbed")

type stubUserService struct {
	list             func(ctx context.Context) ([]*entities.User, error)
	get              func(ctx context.Context, id string) (*entities.User, error)
	reviewedServices func(ctx context.Context, id string) ([]*entities.ServiceProvider, error)
	create           func(ctx context.Context, input services.CreateUserInput) (*entities.User, error)
	update           func(ctx context.Context, id string, input services.UpdateUserInput) (*entities.User, error)
	delete           func(ctx context.Context, id string) error
}

func (s *stubUserService) List(ctx context.Context) ([]*entities.User, error) {
	if s.list == nil {
		return nil, errNotStubbed
	}
	return s.list(ctx)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*entities.User, error) {
	if s.get == nil {
		return nil, errNotStubbed
	}
	return s.get(ctx, id)
}

func (s *stubUserService) ReviewedServices(ctx context.Context, id string) ([]*entities.ServiceProvider, error) {
	if s.reviewedServices == nil {
		return nil, errNotStubbed
	}
	return s.reviewedServices(ctx, id)
}

func (s *stubUserService) Create(ctx context.Context, input services.CreateUserInput) (*entities.User, error) {
	if s.create == nil {
		return nil, errNotStubbed
	}
	return s.create(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, id string, input services.UpdateUserInput) (*entities.User, error) {
	if s.update == nil {
		return nil, errNotStubbed
	}
	return s.update(ctx, id, input)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error {
	if s.delete == nil {
		return errNotStubbed
	}
	return s.delete(ctx, id)
}

type stubServiceProviderService struct {
	list   func(ctx context.Context, filter services.ServiceProviderFilter) ([]*entities.ServiceProvider, error)
	get    func(ctx context.Context, id string) (*entities.ServiceProvider, error)
	create func(ctx context.Context, input services.CreateServiceProviderInput) (*entities.ServiceProvider, error)
	update func(ctx context.Context, id string, input services.UpdateServiceProviderInput) (*entities.ServiceProvider, error)
	delete func(ctx context.Context, id string) error
}

func (s *stubServiceProviderService) List(ctx context.Context, filter services.ServiceProviderFilter) ([]*entities.ServiceProvider, error) {
	if s.list == nil {
		return nil, errNotStubbed
	}
	return s.list(ctx, filter)
}

func (s *stubServiceProviderService) Get(ctx context.Context, id string) (*entities.ServiceProvider, error) {
	if s.get == nil {
		return nil, errNotStubbed
	}
	return s.get(ctx, id)
}

func (s *stubServiceProviderService) Create(ctx context.Context, input services.CreateServiceProviderInput) (*entities.ServiceProvider, error) {
	if s.create == nil {
		return nil, errNotStubbed
	}
	return s.create(ctx, input)
}

func (s *stubServiceProviderService) Update(ctx context.Context, id string, input services.UpdateServiceProviderInput) (*entities.ServiceProvider, error) {
	if s.update == nil {
		return nil, errNotStubbed
	}
	return s.update(ctx, id, input)
}

func (s *stubServiceProviderService) Delete(ctx context.Context, id string) error {
	if s.delete == nil {
		return errNotStubbed
	}
	return s.delete(ctx, id)
}

type stubReviewService struct {
	list   func(ctx context.Context, serviceProviderID string) ([]*entities.Review, error)
	get    func(ctx context.Context, id string) (*entities.Review, error)
	create func(ctx context.Context, input services.CreateReviewInput) (*entities.Review, error)
	update func(ctx context.Context, id string, input services.UpdateReviewInput) (*entities.Review, error)
	delete func(ctx context.Context, id string) error
}

func (s *stubReviewService) List(ctx context.Context, serviceProviderID string) ([]*entities.Review, error) {
	if s.list == nil {
		return nil, errNotStubbed
	}
	return s.list(ctx, serviceProviderID)
}

func (s *stubReviewService) Get(ctx context.Context, id string) (*entities.Review, error) {
	if s.get == nil {
		return nil, errNotStubbed
	}
	return s.get(ctx, id)
}

func (s *stubReviewService) Create(ctx context.Context, input services.CreateReviewInput) (*entities.Review, error) {
	if s.create == nil {
		return nil, errNotStubbed
	}
	return s.create(ctx, input)
}

func (s *stubReviewService) Update(ctx context.Context, id string, input services.UpdateReviewInput) (*entities.Review, error) {
	if s.update == nil {
		return nil, errNotStubbed
	}
	return s.update(ctx, id, input)
}

func (s *stubReviewService) Delete(ctx context.Context, id string) error {
	if s.delete == nil {
		return errNotStubbed
	}
	return s.delete(ctx, id)
}
