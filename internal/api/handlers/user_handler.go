package handlers

import (
	"context"
	"net/http"

	"github.com/konekte/resourcehub/backend/internal/api/serializer"
	"github.com/konekte/resourcehub/backend/internal/application/services"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
)

const (
	msgUserNotFound     = "User not found"
	msgUserCreateFailed = "Failed to create user"
	msgUserUpdateFailed = "Failed to update user"
	msgUserDeleteFailed = "Failed to delete user"
	msgUserDeleted      = "User deleted successfully"
)

// A new user has no relations yet.
var userCreateRules = []string{"-service_providers", "-reviews"}

// UserService defines the user operations used by the handler.
type UserService interface {
	List(ctx context.Context) ([]*entities.User, error)
	Get(ctx context.Context, id string) (*entities.User, error)
	ReviewedServices(ctx context.Context, id string) ([]*entities.ServiceProvider, error)
	Create(ctx context.Context, input services.CreateUserInput) (*entities.User, error)
	Update(ctx context.Context, id string, input services.UpdateUserInput) (*entities.User, error)
	Delete(ctx context.Context, id string) error
}

// UserHandler handles user HTTP requests
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		respondWithReadError(w, r, err, msgUserNotFound)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.SerializeList(users))
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	body, err := decodePayload(w, r)
	if err != nil {
		respondWithWriteError(w, r, err, msgUserNotFound, msgUserCreateFailed)
		return
	}

	name, err := body.str("name")
	if err != nil {
		respondWithWriteError(w, r, err, msgUserNotFound, msgUserCreateFailed)
		return
	}
	email, err := body.str("email")
	if err != nil {
		respondWithWriteError(w, r, err, msgUserNotFound, msgUserCreateFailed)
		return
	}

	user, err := h.service.Create(r.Context(), services.CreateUserInput{
		Name:  name.Value,
		Email: email.Value,
	})
	if err != nil {
		respondWithWriteError(w, r, err, msgUserNotFound, msgUserCreateFailed)
		return
	}
	respondWithJSON(w, http.StatusCreated, serializer.Serialize(user, userCreateRules...))
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithReadError(w, r, err, msgUserNotFound)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Serialize(user))
}

// GetReviewedServices handles GET /api/users/{id}/reviewed-services
func (h *UserHandler) GetReviewedServices(w http.ResponseWriter, r *http.Request) {
	providers, err := h.service.ReviewedServices(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithReadError(w, r, err, msgUserNotFound)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.SerializeList(providers))
}

// UpdateUser handles PATCH /api/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	body, err := decodePayload(w, r)
	if err != nil {
		respondWithWriteError(w, r, err, msgUserNotFound, msgUserUpdateFailed)
		return
	}

	var input services.UpdateUserInput
	if input.Name, err = body.str("name"); err != nil {
		respondWithWriteError(w, r, err, msgUserNotFound, msgUserUpdateFailed)
		return
	}
	if input.Email, err = body.str("email"); err != nil {
		respondWithWriteError(w, r, err, msgUserNotFound, msgUserUpdateFailed)
		return
	}

	user, err := h.service.Update(r.Context(), r.PathValue("id"), input)
	if err != nil {
		respondWithWriteError(w, r, err, msgUserNotFound, msgUserUpdateFailed)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Serialize(user))
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondWithWriteError(w, r, err, msgUserNotFound, msgUserDeleteFailed)
		return
	}
	respondWithMessage(w, msgUserDeleted)
}
