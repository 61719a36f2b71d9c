package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/konekte/resourcehub/backend/internal/infrastructure/observability"
)

const banner = "<h1>Konekte - Community Resource Hub API</h1>"

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the banner and liveness endpoints
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Index handles GET /
func (h *HealthHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(banner))
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Msg("database health check failed")
		respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
