package api

import (
	"context"
	"net/http"
	"time"

	"flight-query-service/pkg/logger"
)

const healthCheckTimeout = 3 * time.Second

// Pinger is satisfied by the store handle
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the flights store is reachable
type HealthHandler struct {
	store  Pinger
	logger logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store Pinger, log logger.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: log}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Unhealthy"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Healthy"))
}
