package routes

import (
	"net/http"

	"github.com/konekte/resourcehub/backend/internal/api/handlers"
	"github.com/konekte/resourcehub/backend/internal/api/middleware"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	healthHandler          *handlers.HealthHandler
	userHandler            *handlers.UserHandler
	serviceProviderHandler *handlers.ServiceProviderHandler
	reviewHandler          *handlers.ReviewHandler

	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	serviceProviderHandler *handlers.ServiceProviderHandler,
	reviewHandler *handlers.ReviewHandler,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                    http.NewServeMux(),
		healthHandler:          healthHandler,
		userHandler:            userHandler,
		serviceProviderHandler: serviceProviderHandler,
		reviewHandler:          reviewHandler,
		allowedOrigins:         allowedOrigins,
		metrics:                metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /{$}", r.healthHandler.Index)
	r.mux.HandleFunc("GET /health", r.healthHandler.Health)

	// User endpoints
	r.mux.HandleFunc("GET /api/users", r.userHandler.ListUsers)
	r.mux.HandleFunc("POST /api/users", r.userHandler.CreateUser)
	r.mux.HandleFunc("GET /api/users/{id}", r.userHandler.GetUser)
	r.mux.HandleFunc("PATCH /api/users/{id}", r.userHandler.UpdateUser)
	r.mux.HandleFunc("DELETE /api/users/{id}", r.userHandler.DeleteUser)
	r.mux.HandleFunc("GET /api/users/{id}/reviewed-services", r.userHandler.GetReviewedServices)

	// Service provider endpoints
	r.mux.HandleFunc("GET /api/service-providers", r.serviceProviderHandler.ListServiceProviders)
	r.mux.HandleFunc("POST /api/service-providers", r.serviceProviderHandler.CreateServiceProvider)
	r.mux.HandleFunc("GET /api/service-providers/{id}", r.serviceProviderHandler.GetServiceProvider)
	r.mux.HandleFunc("PATCH /api/service-providers/{id}", r.serviceProviderHandler.UpdateServiceProvider)
	r.mux.HandleFunc("DELETE /api/service-providers/{id}", r.serviceProviderHandler.DeleteServiceProvider)

	// Review endpoints
	r.mux.HandleFunc("GET /api/reviews", r.reviewHandler.ListReviews)
	r.mux.HandleFunc("POST /api/reviews", r.reviewHandler.CreateReview)
	r.mux.HandleFunc("GET /api/reviews/{id}", r.reviewHandler.GetReview)
	r.mux.HandleFunc("PATCH /api/reviews/{id}", r.reviewHandler.UpdateReview)
	r.mux.HandleFunc("DELETE /api/reviews/{id}", r.reviewHandler.DeleteReview)

	// Apply middleware in reverse order (last middleware wraps first).
	// Logging sits directly on the mux so it sees the matched pattern.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
