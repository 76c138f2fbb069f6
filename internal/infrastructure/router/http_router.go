package router

import (
	"net/http"

	"flight-query-service/internal/interface/api"
	"flight-query-service/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers groups everything the HTTP router dispatches to
type Handlers struct {
	Flights *api.FlightHandler
	Health  http.Handler
	Metrics http.Handler
}

// NewHTTPRouter maps the lookup, health and metrics endpoints
func NewHTTPRouter(h Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(api.RequestLogger(log))
	r.Use(api.Recoverer(log))

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Get("/gfb_id/{flight_id}", h.Flights.GetFlightByID)
		r.Get("/gfb_date", h.Flights.GetFlightsByDate)
		r.Get("/gdfb_airline", h.Flights.GetDelayedFlightsByAirline)
		r.Get("/gdfb_airport", h.Flights.GetDelayedFlightsByAirport)
	})

	if h.Health != nil {
		r.Method(http.MethodGet, "/health", h.Health)
	}
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	log.Info("Registered HTTP routes", "count", len(r.Routes()))
	return r
}
