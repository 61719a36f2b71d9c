package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/konekte/resourcehub/backend/internal/api/handlers"
	"github.com/konekte/resourcehub/backend/internal/application/services"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	apperrors "github.com/konekte/resourcehub/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceProviderHandler_Create(t *testing.T) {
	var received services.CreateServiceProviderInput
	service := &stubServiceProviderService{
		create: func(ctx context.Context, input services.CreateServiceProviderInput) (*entities.ServiceProvider, error) {
			received = input
			owner := &entities.User{ID: input.UserID, Name: "Ana Smith"}
			return &entities.ServiceProvider{
				ID:          "sp-1",
				Name:        input.Name,
				Category:    input.Category,
				Description: input.Description,
				Location:    input.Location,
				UserID:      input.UserID,
				User:        owner,
				Reviews:     []*entities.Review{},
			}, nil
		},
	}
	handler := handlers.NewServiceProviderHandler(service)

	body := `{"name":"Clinic A","category":"Medical/Health","description":"Free primary care","location":"Port-au-Prince","phone":null,"user_id":"u-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/service-providers", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.CreateServiceProvider(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, received.Phone)
	assert.Nil(t, received.Hours)

	out := decodeObject(t, w)
	assert.Equal(t, "Medical/Health", out["category"])
	assert.Nil(t, out["phone"])
	assert.NotContains(t, out, "reviews")
	assert.Equal(t, "Ana Smith", out["user"].(map[string]any)["name"])
}

func TestServiceProviderHandler_CreateMissingUser(t *testing.T) {
	service := &stubServiceProviderService{
		create: func(ctx context.Context, input services.CreateServiceProviderInput) (*entities.ServiceProvider, error) {
			assert.Empty(t, input.UserID)
			return nil, apperrors.NewValidationError("user_id", "user_id is required")
		},
	}
	handler := handlers.NewServiceProviderHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/service-providers", strings.NewReader(`{"name":"Clinic A"}`))
	w := httptest.NewRecorder()
	handler.CreateServiceProvider(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "user_id is required", decodeObject(t, w)["error"])
}

func TestServiceProviderHandler_ListPassesQuery(t *testing.T) {
	var received services.ServiceProviderFilter
	service := &stubServiceProviderService{
		list: func(ctx context.Context, filter services.ServiceProviderFilter) ([]*entities.ServiceProvider, error) {
			received = filter
			return []*entities.ServiceProvider{{ID: "sp-2", Category: entities.CategoryEducation, Reviews: []*entities.Review{}}}, nil
		},
	}
	handler := handlers.NewServiceProviderHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/service-providers?category=Education&search=school", nil)
	w := httptest.NewRecorder()
	handler.ListServiceProviders(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, services.ServiceProviderFilter{Category: "Education", Search: "school"}, received)

	out := decodeArray(t, w)
	require.Len(t, out, 1)
	assert.Equal(t, "Education", out[0]["category"])
	assert.Equal(t, float64(0), out[0]["average_rating"])
	assert.Equal(t, float64(0), out[0]["review_count"])
	assert.Equal(t, []any{}, out[0]["reviews"])
}

func TestServiceProviderHandler_GetNestsReviewAuthors(t *testing.T) {
	owner := &entities.User{ID: "u-1", Name: "Ana"}
	reviewer := &entities.User{ID: "u-2", Name: "Jean"}
	provider := &entities.ServiceProvider{ID: "sp-1", Name: "Clinic A", UserID: "u-1", User: owner}
	provider.Reviews = []*entities.Review{
		{ID: "r-1", Rating: 4, UserID: "u-2", ServiceProviderID: "sp-1", User: reviewer, ServiceProvider: provider},
		{ID: "r-2", Rating: 3, UserID: "u-1", ServiceProviderID: "sp-1", User: owner, ServiceProvider: provider},
	}
	service := &stubServiceProviderService{
		get: func(ctx context.Context, id string) (*entities.ServiceProvider, error) { return provider, nil },
	}
	handler := handlers.NewServiceProviderHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/service-providers/sp-1", nil)
	req.SetPathValue("id", "sp-1")
	w := httptest.NewRecorder()
	handler.GetServiceProvider(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	out := decodeObject(t, w)
	assert.Equal(t, 3.5, out["average_rating"])

	reviews := out["reviews"].([]any)
	require.Len(t, reviews, 2)
	first := reviews[0].(map[string]any)
	assert.NotContains(t, first, "service_provider")
	assert.Equal(t, "Jean", first["user"].(map[string]any)["name"])
}

func TestServiceProviderHandler_UpdateClearsPhone(t *testing.T) {
	var received services.UpdateServiceProviderInput
	service := &stubServiceProviderService{
		update: func(ctx context.Context, id string, input services.UpdateServiceProviderInput) (*entities.ServiceProvider, error) {
			received = input
			return &entities.ServiceProvider{ID: id, Name: "Clinic A", Reviews: []*entities.Review{}}, nil
		},
	}
	handler := handlers.NewServiceProviderHandler(service)

	req := httptest.NewRequest(http.MethodPatch, "/api/service-providers/sp-1", strings.NewReader(`{"phone":null,"hours":"24/7"}`))
	req.SetPathValue("id", "sp-1")
	w := httptest.NewRecorder()
	handler.UpdateServiceProvider(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, received.Phone.Set)
	assert.Nil(t, received.Phone.Value)
	require.True(t, received.Hours.Set)
	assert.Equal(t, "24/7", *received.Hours.Value)
	assert.False(t, received.Name.Set)
	assert.False(t, received.Category.Set)
}

func TestServiceProviderHandler_UpdateUnexpectedFailure(t *testing.T) {
	service := &stubServiceProviderService{
		update: func(ctx context.Context, id string, input services.UpdateServiceProviderInput) (*entities.ServiceProvider, error) {
			return nil, apperrors.NewInternalError("failed to update service provider", errors.New("connection reset"))
		},
	}
	handler := handlers.NewServiceProviderHandler(service)

	req := httptest.NewRequest(http.MethodPatch, "/api/service-providers/sp-1", strings.NewReader(`{"name":"Clinic B"}`))
	req.SetPathValue("id", "sp-1")
	w := httptest.NewRecorder()
	handler.UpdateServiceProvider(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Failed to update service provider", decodeObject(t, w)["error"])
}

func TestServiceProviderHandler_DeleteNotFound(t *testing.T) {
	service := &stubServiceProviderService{
		delete: func(ctx context.Context, id string) error {
			return apperrors.NewNotFoundError("service provider not found")
		},
	}
	handler := handlers.NewServiceProviderHandler(service)

	req := httptest.NewRequest(http.MethodDelete, "/api/service-providers/sp-9", nil)
	req.SetPathValue("id", "sp-9")
	w := httptest.NewRecorder()
	handler.DeleteServiceProvider(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Service provider not found", decodeObject(t, w)["error"])
}
