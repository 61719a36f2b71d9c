package repositories

import (
	"context"

	"github.com/konekte/resourcehub/backend/internal/domain/entities"
)

// Transactor runs fn inside one store transaction. The transaction travels
// in the context passed to fn; repositories called with that context join it.
// It commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByIDs retrieves the users with the given IDs; missing IDs are skipped
	GetByIDs(ctx context.Context, ids []string) ([]*entities.User, error)

	// List retrieves all users ordered by creation time
	List(ctx context.Context) ([]*entities.User, error)

	// Update updates a user's mutable columns
	Update(ctx context.Context, user *entities.User) error

	// Delete deletes a user; the store cascades to providers and reviews
	Delete(ctx context.Context, id string) error
}
