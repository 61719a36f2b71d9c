package handlers

import (
	"context"
	"net/http"

	"github.com/konekte/resourcehub/backend/internal/api/serializer"
	"github.com/konekte/resourcehub/backend/internal/application/services"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
)

const (
	msgServiceProviderNotFound     = "Service provider not found"
	msgServiceProviderCreateFailed = "Failed to create service provider"
	msgServiceProviderUpdateFailed = "Failed to update service provider"
	msgServiceProviderDeleteFailed = "Failed to delete service provider"
	msgServiceProviderDeleted      = "Service provider deleted successfully"
)

var (
	serviceProviderRules       = []string{"-user.service_providers", "-reviews.service_provider"}
	serviceProviderCreateRules = []string{"-user.service_providers", "-reviews"}
)

// ServiceProviderService defines the service provider operations used by the handler.
type ServiceProviderService interface {
	List(ctx context.Context, filter services.ServiceProviderFilter) ([]*entities.ServiceProvider, error)
	Get(ctx context.Context, id string) (*entities.ServiceProvider, error)
	Create(ctx context.Context, input services.CreateServiceProviderInput) (*entities.ServiceProvider, error)
	Update(ctx context.Context, id string, input services.UpdateServiceProviderInput) (*entities.ServiceProvider, error)
	Delete(ctx context.Context, id string) error
}

// ServiceProviderHandler handles service provider HTTP requests
type ServiceProviderHandler struct {
	service ServiceProviderService
}

// NewServiceProviderHandler creates a new service provider handler
func NewServiceProviderHandler(service ServiceProviderService) *ServiceProviderHandler {
	return &ServiceProviderHandler{service: service}
}

// ListServiceProviders handles GET /api/service-providers?category=&search=
func (h *ServiceProviderHandler) ListServiceProviders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	providers, err := h.service.List(r.Context(), services.ServiceProviderFilter{
		Category: query.Get("category"),
		Search:   query.Get("search"),
	})
	if err != nil {
		respondWithReadError(w, r, err, msgServiceProviderNotFound)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.SerializeList(providers, serviceProviderRules...))
}

// CreateServiceProvider handles POST /api/service-providers
func (h *ServiceProviderHandler) CreateServiceProvider(w http.ResponseWriter, r *http.Request) {
	input, err := decodeCreateServiceProvider(w, r)
	if err != nil {
		respondWithWriteError(w, r, err, msgServiceProviderNotFound, msgServiceProviderCreateFailed)
		return
	}

	provider, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondWithWriteError(w, r, err, msgServiceProviderNotFound, msgServiceProviderCreateFailed)
		return
	}
	respondWithJSON(w, http.StatusCreated, serializer.Serialize(provider, serviceProviderCreateRules...))
}

func decodeCreateServiceProvider(w http.ResponseWriter, r *http.Request) (services.CreateServiceProviderInput, error) {
	var input services.CreateServiceProviderInput
	body, err := decodePayload(w, r)
	if err != nil {
		return input, err
	}

	fields := []struct {
		name string
		dest *string
	}{
		{"user_id", &input.UserID},
		{"name", &input.Name},
		{"category", &input.Category},
		{"description", &input.Description},
		{"location", &input.Location},
	}
	for _, field := range fields {
		value, err := body.str(field.name)
		if err != nil {
			return input, err
		}
		*field.dest = value.Value
	}

	phone, err := body.nullableStr("phone")
	if err != nil {
		return input, err
	}
	hours, err := body.nullableStr("hours")
	if err != nil {
		return input, err
	}
	input.Phone = phone.Value
	input.Hours = hours.Value
	return input, nil
}

// GetServiceProvider handles GET /api/service-providers/{id}
func (h *ServiceProviderHandler) GetServiceProvider(w http.ResponseWriter, r *http.Request) {
	provider, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithReadError(w, r, err, msgServiceProviderNotFound)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Serialize(provider, serviceProviderRules...))
}

// UpdateServiceProvider handles PATCH /api/service-providers/{id}
func (h *ServiceProviderHandler) UpdateServiceProvider(w http.ResponseWriter, r *http.Request) {
	input, err := decodeUpdateServiceProvider(w, r)
	if err != nil {
		respondWithWriteError(w, r, err, msgServiceProviderNotFound, msgServiceProviderUpdateFailed)
		return
	}

	provider, err := h.service.Update(r.Context(), r.PathValue("id"), input)
	if err != nil {
		respondWithWriteError(w, r, err, msgServiceProviderNotFound, msgServiceProviderUpdateFailed)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Serialize(provider, serviceProviderRules...))
}

func decodeUpdateServiceProvider(w http.ResponseWriter, r *http.Request) (services.UpdateServiceProviderInput, error) {
	var input services.UpdateServiceProviderInput
	body, err := decodePayload(w, r)
	if err != nil {
		return input, err
	}

	if input.Name, err = body.str("name"); err != nil {
		return input, err
	}
	if input.Category, err = body.str("category"); err != nil {
		return input, err
	}
	if input.Description, err = body.str("description"); err != nil {
		return input, err
	}
	if input.Location, err = body.str("location"); err != nil {
		return input, err
	}
	if input.Phone, err = body.nullableStr("phone"); err != nil {
		return input, err
	}
	if input.Hours, err = body.nullableStr("hours"); err != nil {
		return input, err
	}
	return input, nil
}

// DeleteServiceProvider handles DELETE /api/service-providers/{id}
func (h *ServiceProviderHandler) DeleteServiceProvider(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondWithWriteError(w, r, err, msgServiceProviderNotFound, msgServiceProviderDeleteFailed)
		return
	}
	respondWithMessage(w, msgServiceProviderDeleted)
}
