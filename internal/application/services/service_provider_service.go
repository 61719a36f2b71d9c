package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/konekte/resourcehub/backend/internal/domain/repositories"
	"github.com/konekte/resourcehub/backend/internal/domain/validation"
)

// CreateServiceProviderInput carries the raw fields of a new service provider.
type CreateServiceProviderInput struct {
	Name        string
	Category    string
	Description string
	Location    string
	Phone       *string
	Hours       *string
	UserID      string
}

// UpdateServiceProviderInput carries a partial update. A set Phone or Hours
// holding nil clears the value.
type UpdateServiceProviderInput struct {
	Name        Optional[string]
	Category    Optional[string]
	Description Optional[string]
	Location    Optional[string]
	Phone       Optional[*string]
	Hours       Optional[*string]
}

// ServiceProviderFilter holds the list query parameters.
type ServiceProviderFilter struct {
	Category string
	Search   string
}

// ServiceProviderService handles service provider use cases
type ServiceProviderService struct {
	eventPublisher
	providers repositories.ServiceProviderRepository
	tx        repositories.Transactor
	graph     *graphLoader
}

// NewServiceProviderService creates a new service provider service
func NewServiceProviderService(
	users repositories.UserRepository,
	providers repositories.ServiceProviderRepository,
	reviews repositories.ReviewRepository,
	tx repositories.Transactor,
) *ServiceProviderService {
	return &ServiceProviderService{
		providers: providers,
		tx:        tx,
		graph:     &graphLoader{users: users, providers: providers, reviews: reviews},
	}
}

// List returns the service providers matching the filter with owner and reviews
func (s *ServiceProviderService) List(ctx context.Context, filter ServiceProviderFilter) ([]*entities.ServiceProvider, error) {
	providers, err := s.providers.List(ctx, repositories.ServiceProviderFilter{
		Category: filter.Category,
		Search:   strings.TrimSpace(filter.Search),
	})
	if err != nil {
		return nil, err
	}
	if err := s.graph.loadProviders(ctx, providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// Get returns one service provider with owner and reviews
func (s *ServiceProviderService) Get(ctx context.Context, id string) (*entities.ServiceProvider, error) {
	provider, err := s.providers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.graph.loadProviders(ctx, []*entities.ServiceProvider{provider}); err != nil {
		return nil, err
	}
	return provider, nil
}

// Create validates and stores a new service provider
func (s *ServiceProviderService) Create(ctx context.Context, input CreateServiceProviderInput) (*entities.ServiceProvider, error) {
	userID, err := validation.Required(input.UserID, "user_id")
	if err != nil {
		return nil, err
	}

	provider := &entities.ServiceProvider{
		ID:     uuid.New().String(),
		UserID: userID,
	}
	if provider.Name, err = validation.ServiceName(input.Name, "name"); err != nil {
		return nil, err
	}
	if provider.Category, err = validation.Category(input.Category, "category"); err != nil {
		return nil, err
	}
	if provider.Description, err = validation.Description(input.Description, "description"); err != nil {
		return nil, err
	}
	if provider.Location, err = validation.Location(input.Location, "location"); err != nil {
		return nil, err
	}
	if provider.Phone, err = validation.Phone(input.Phone, "phone"); err != nil {
		return nil, err
	}
	if provider.Hours, err = validation.Hours(input.Hours, "hours"); err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.providers.Create(ctx, provider)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.EventServiceProviderCreated, provider.ID)
	if err := s.graph.loadProviders(ctx, []*entities.ServiceProvider{provider}); err != nil {
		logReloadFailure(ctx, err, entities.EventServiceProviderCreated, provider.ID)
	}
	return provider, nil
}

// Update applies a partial update, validating only the fields present
func (s *ServiceProviderService) Update(ctx context.Context, id string, input UpdateServiceProviderInput) (*entities.ServiceProvider, error) {
	var provider *entities.ServiceProvider
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		provider, err = s.providers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := applyServiceProviderUpdate(provider, input); err != nil {
			return err
		}
		return s.providers.Update(ctx, provider)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.EventServiceProviderUpdated, provider.ID)
	if err := s.graph.loadProviders(ctx, []*entities.ServiceProvider{provider}); err != nil {
		logReloadFailure(ctx, err, entities.EventServiceProviderUpdated, provider.ID)
	}
	return provider, nil
}

func applyServiceProviderUpdate(provider *entities.ServiceProvider, input UpdateServiceProviderInput) error {
	var err error
	if input.Name.Set {
		if provider.Name, err = validation.ServiceName(input.Name.Value, "name"); err != nil {
			return err
		}
	}
	if input.Category.Set {
		if provider.Category, err = validation.Category(input.Category.Value, "category"); err != nil {
			return err
		}
	}
	if input.Description.Set {
		if provider.Description, err = validation.Description(input.Description.Value, "description"); err != nil {
			return err
		}
	}
	if input.Location.Set {
		if provider.Location, err = validation.Location(input.Location.Value, "location"); err != nil {
			return err
		}
	}
	if input.Phone.Set {
		if provider.Phone, err = validation.Phone(input.Phone.Value, "phone"); err != nil {
			return err
		}
	}
	if input.Hours.Set {
		if provider.Hours, err = validation.Hours(input.Hours.Value, "hours"); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a service provider and its reviews
func (s *ServiceProviderService) Delete(ctx context.Context, id string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.providers.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, entities.EventServiceProviderDeleted, id)
	return nil
}
