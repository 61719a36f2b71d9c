package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/konekte/resourcehub/backend/internal/domain/repositories"
	"github.com/konekte/resourcehub/backend/internal/domain/validation"
)

// CreateUserInput carries the raw fields of a new user.
type CreateUserInput struct {
	Name  string
	Email string
}

// UpdateUserInput carries a partial user update.
type UpdateUserInput struct {
	Name  Optional[string]
	Email Optional[string]
}

// UserService handles user use cases
type UserService struct {
	eventPublisher
	users repositories.UserRepository
	tx    repositories.Transactor
	graph *graphLoader
}

// NewUserService creates a new user service
func NewUserService(
	users repositories.UserRepository,
	providers repositories.ServiceProviderRepository,
	reviews repositories.ReviewRepository,
	tx repositories.Transactor,
) *UserService {
	return &UserService{
		users: users,
		tx:    tx,
		graph: &graphLoader{users: users, providers: providers, reviews: reviews},
	}
}

// List returns all users with their service providers and reviews
func (s *UserService) List(ctx context.Context) ([]*entities.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.graph.loadUsers(ctx, users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns one user with its service providers and reviews
func (s *UserService) Get(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.graph.loadUsers(ctx, []*entities.User{user}); err != nil {
		return nil, err
	}
	return user, nil
}

// ReviewedServices returns the service providers the user has reviewed
func (s *UserService) ReviewedServices(ctx context.Context, id string) ([]*entities.ServiceProvider, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.graph.loadUsers(ctx, []*entities.User{user}); err != nil {
		return nil, err
	}
	return user.ReviewedServices(), nil
}

// Create validates and stores a new user
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	name, err := validation.UserName(input.Name, "name")
	if err != nil {
		return nil, err
	}
	email, err := validation.Email(input.Email, "email")
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
	}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.EventUserCreated, user.ID)
	return user, nil
}

// Update applies a partial update, validating only the fields present
func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	var user *entities.User
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.users.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Name.Set {
			if user.Name, err = validation.UserName(input.Name.Value, "name"); err != nil {
				return err
			}
		}
		if input.Email.Set {
			if user.Email, err = validation.Email(input.Email.Value, "email"); err != nil {
				return err
			}
		}
		return s.users.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.EventUserUpdated, user.ID)
	if err := s.graph.loadUsers(ctx, []*entities.User{user}); err != nil {
		logReloadFailure(ctx, err, entities.EventUserUpdated, user.ID)
	}
	return user, nil
}

// Delete removes a user together with its service providers and reviews
func (s *UserService) Delete(ctx context.Context, id string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.users.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, entities.EventUserDeleted, id)
	return nil
}
