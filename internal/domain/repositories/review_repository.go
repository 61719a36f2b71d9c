package repositories

import (
	"context"

	"github.com/konekte/resourcehub/backend/internal/domain/entities"
)

// ReviewFilter narrows a review listing. Empty slices mean no restriction.
type ReviewFilter struct {
	ServiceProviderIDs []string
	UserIDs            []string
}

// ReviewRepository defines the interface for review operations
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error

	GetByID(ctx context.Context, id string) (*entities.Review, error)

	List(ctx context.Context, filter ReviewFilter) ([]*entities.Review, error)

	// Update updates rating and comment
	Update(ctx context.Context, review *entities.Review) error

	Delete(ctx context.Context, id string) error
}
