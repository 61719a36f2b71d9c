package repositories

import (
	"context"

	"github.com/konekte/resourcehub/backend/internal/domain/entities"
)

// ServiceProviderFilter holds the optional list filters. Category matches
// exactly; Search is a case-insensitive substring match on name, description
// and location. Empty fields mean no restriction.
type ServiceProviderFilter struct {
	IDs      []string
	UserIDs  []string
	Category string
	Search   string
}

// ServiceProviderRepository defines the interface for service provider operations
type ServiceProviderRepository interface {
	Create(ctx context.Context, provider *entities.ServiceProvider) error

	GetByID(ctx context.Context, id string) (*entities.ServiceProvider, error)

	// GetByIDs retrieves the providers with the given IDs; missing IDs are skipped
	GetByIDs(ctx context.Context, ids []string) ([]*entities.ServiceProvider, error)

	List(ctx context.Context, filter ServiceProviderFilter) ([]*entities.ServiceProvider, error)

	Update(ctx context.Context, provider *entities.ServiceProvider) error

	// Delete deletes a provider; the store cascades to its reviews
	Delete(ctx context.Context, id string) error
}
