package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/konekte/resourcehub/backend/internal/api/handlers"
	"github.com/konekte/resourcehub/backend/internal/application/services"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	apperrors "github.com/konekte/resourcehub/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func decodeArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var body []map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestUserHandler_CreateUser_Success(t *testing.T) {
	var received services.CreateUserInput
	service := &stubUserService{
		create: func(ctx context.Context, input services.CreateUserInput) (*entities.User, error) {
			received = input
			return &entities.User{
				ID:        "u-1",
				Name:      "Ana Smith",
				Email:     "ana@x.com",
				CreatedAt: time.Now(),
				Reviews:   []*entities.Review{},
			}, nil
		},
	}
	handler := handlers.NewUserHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"name":"Ana Smith","email":"ANA@X.COM"}`))
	w := httptest.NewRecorder()
	handler.CreateUser(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ANA@X.COM", received.Email)

	body := decodeObject(t, w)
	assert.Equal(t, "ana@x.com", body["email"])
	assert.NotContains(t, body, "reviews")
	assert.NotContains(t, body, "service_providers")
}

func TestUserHandler_CreateUser_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		createErr error
		status    int
		message   string
	}{
		{
			name:      "validation message is returned",
			body:      `{"name":"A","email":"a@x.com"}`,
			createErr: apperrors.NewValidationError("name", "Name must be at least 2 characters long"),
			status:    http.StatusBadRequest,
			message:   "Name must be at least 2 characters long",
		},
		{
			name:    "non string field",
			body:    `{"name":42,"email":"a@x.com"}`,
			status:  http.StatusBadRequest,
			message: "name must be a string",
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			status:  http.StatusBadRequest,
			message: "Failed to create user",
		},
		{
			name:      "duplicate email",
			body:      `{"name":"Ana","email":"a@x.com"}`,
			createErr: apperrors.NewConflictError("failed to create user", errors.New("23505")),
			status:    http.StatusBadRequest,
			message:   "Failed to create user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubUserService{
				create: func(ctx context.Context, input services.CreateUserInput) (*entities.User, error) {
					return nil, tt.createErr
				},
			}
			handler := handlers.NewUserHandler(service)

			req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.CreateUser(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decodeObject(t, w)["error"])
		})
	}
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	service := &stubUserService{
		get: func(ctx context.Context, id string) (*entities.User, error) {
			assert.Equal(t, "missing", id)
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}
	handler := handlers.NewUserHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/users/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	handler.GetUser(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeObject(t, w)["error"])
}

func TestUserHandler_GetUser_NestsRelationsWithoutBackReferences(t *testing.T) {
	user := &entities.User{ID: "u-1", Name: "Ana", Email: "ana@x.com"}
	provider := &entities.ServiceProvider{ID: "sp-1", Name: "Clinic A", UserID: "u-1"}
	reviewed := &entities.ServiceProvider{ID: "sp-2", Name: "School B", UserID: "u-2"}
	user.ServiceProviders = []*entities.ServiceProvider{provider}
	user.Reviews = []*entities.Review{{ID: "r-1", Rating: 5, UserID: "u-1", ServiceProviderID: "sp-2", ServiceProvider: reviewed, User: user}}

	service := &stubUserService{
		get: func(ctx context.Context, id string) (*entities.User, error) { return user, nil },
	}
	handler := handlers.NewUserHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/users/u-1", nil)
	req.SetPathValue("id", "u-1")
	w := httptest.NewRecorder()
	handler.GetUser(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeObject(t, w)
	assert.NotContains(t, body, "reviewed_services")

	reviews := body["reviews"].([]any)
	require.Len(t, reviews, 1)
	review := reviews[0].(map[string]any)
	assert.NotContains(t, review, "user")
	assert.Equal(t, "School B", review["service_provider"].(map[string]any)["name"])

	providers := body["service_providers"].([]any)
	require.Len(t, providers, 1)
	assert.NotContains(t, providers[0], "user")
}

func TestUserHandler_ListUsers_EmptyArray(t *testing.T) {
	service := &stubUserService{
		list: func(ctx context.Context) ([]*entities.User, error) { return []*entities.User{}, nil },
	}
	handler := handlers.NewUserHandler(service)

	w := httptest.NewRecorder()
	handler.ListUsers(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestUserHandler_UpdateUser_PartialInput(t *testing.T) {
	var received services.UpdateUserInput
	service := &stubUserService{
		update: func(ctx context.Context, id string, input services.UpdateUserInput) (*entities.User, error) {
			received = input
			return &entities.User{ID: id, Name: "Ana Maria", Email: "ana@x.com"}, nil
		},
	}
	handler := handlers.NewUserHandler(service)

	req := httptest.NewRequest(http.MethodPatch, "/api/users/u-1", strings.NewReader(`{"name":"Ana Maria"}`))
	req.SetPathValue("id", "u-1")
	w := httptest.NewRecorder()
	handler.UpdateUser(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, services.Some("Ana Maria"), received.Name)
	assert.False(t, received.Email.Set)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	service := &stubUserService{
		delete: func(ctx context.Context, id string) error { return nil },
	}
	handler := handlers.NewUserHandler(service)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/u-1", nil)
	req.SetPathValue("id", "u-1")
	w := httptest.NewRecorder()
	handler.DeleteUser(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted successfully", decodeObject(t, w)["message"])
}

func TestUserHandler_GetReviewedServices(t *testing.T) {
	service := &stubUserService{
		reviewedServices: func(ctx context.Context, id string) ([]*entities.ServiceProvider, error) {
			return []*entities.ServiceProvider{{ID: "sp-2", Name: "School B"}}, nil
		},
	}
	handler := handlers.NewUserHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/users/u-1/reviewed-services", nil)
	req.SetPathValue("id", "u-1")
	w := httptest.NewRecorder()
	handler.GetReviewedServices(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeArray(t, w)
	require.Len(t, body, 1)
	assert.Equal(t, "School B", body[0]["name"])
}
