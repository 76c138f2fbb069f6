package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"flight-query-service/internal/domain/entity"
	"flight-query-service/internal/domain/repository"
	"flight-query-service/internal/usecase"
	"flight-query-service/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// DateLayout accepts DD/MM/YYYY, with or without leading zeros
const DateLayout = "2/1/2006"

type dateQuery struct {
	Date string `validate:"required"`
}

type airlineQuery struct {
	Airline string `validate:"required"`
}

type airportQuery struct {
	Airport string `validate:"required"`
}

// FlightHandler serves the four flight lookup endpoints
type FlightHandler struct {
	querier  usecase.FlightQuerier
	validate *validator.Validate
	logger   logger.Logger
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(querier usecase.FlightQuerier, log logger.Logger) *FlightHandler {
	return &FlightHandler{
		querier:  querier,
		validate: validator.New(),
		logger:   log,
	}
}

// GetFlightByID handles GET /api/gfb_id/{flight_id}
func (h *FlightHandler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "flight_id")
	flightID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeInputError(w, &InputParseError{Param: "flight_id", Value: raw, Err: err})
		return
	}

	records, err := h.querier.GetFlightByID(r.Context(), flightID)
	h.respond(w, records, err, "flight id")
}

// GetFlightsByDate handles GET /api/gfb_date?date=DD/MM/YYYY
func (h *FlightHandler) GetFlightsByDate(w http.ResponseWriter, r *http.Request) {
	q := dateQuery{Date: r.URL.Query().Get("date")}
	if err := h.validate.Struct(q); err != nil {
		h.writeInputError(w, &InputParseError{Param: "date", Value: q.Date, Err: err})
		return
	}

	date, err := time.Parse(DateLayout, q.Date)
	if err != nil {
		h.writeInputError(w, &InputParseError{Param: "date", Value: q.Date, Err: err})
		return
	}

	records, err := h.querier.GetFlightsByDate(r.Context(), date.Day(), int(date.Month()), date.Year())
	h.respond(w, records, err, "date")
}

// GetDelayedFlightsByAirline handles GET /api/gdfb_airline?airline=NAME
func (h *FlightHandler) GetDelayedFlightsByAirline(w http.ResponseWriter, r *http.Request) {
	q := airlineQuery{Airline: r.URL.Query().Get("airline")}
	if err := h.validate.Struct(q); err != nil {
		h.writeInputError(w, &InputParseError{Param: "airline", Value: q.Airline, Err: err})
		return
	}

	records, err := h.querier.GetDelayedFlightsByAirline(r.Context(), q.Airline)
	h.respond(w, records, err, "airline")
}

// GetDelayedFlightsByAirport handles GET /api/gdfb_airport?airport=IATA
func (h *FlightHandler) GetDelayedFlightsByAirport(w http.ResponseWriter, r *http.Request) {
	q := airportQuery{Airport: r.URL.Query().Get("airport")}
	if err := h.validate.Struct(q); err != nil {
		h.writeInputError(w, &InputParseError{Param: "airport", Value: q.Airport, Err: err})
		return
	}

	records, err := h.querier.GetDelayedFlightsByAirport(r.Context(), q.Airport)
	h.respond(w, records, err, "airport")
}

func (h *FlightHandler) respond(w http.ResponseWriter, records []entity.FlightRecord, err error, subject string) {
	if err != nil {
		var qe *repository.QueryExecutionError
		if errors.As(err, &qe) {
			h.logger.Warn("Lookup rejected", "template", qe.Template, "code", qe.Code, "error", qe.Err)
			WriteError(w, http.StatusBadRequest, ErrorInvalidRequest)
			return
		}

		h.logger.Error("Unexpected lookup failure", "error", err)
		WriteError(w, http.StatusInternalServerError, ErrorInternal)
		return
	}

	if len(records) == 0 {
		writeJSON(w, http.StatusOK, MessageResponse{Message: noDataMessage + subject})
		return
	}

	if err := writeJSON(w, http.StatusOK, records); err != nil {
		h.logger.Error("Failed to write response", "error", err)
	}
}

func (h *FlightHandler) writeInputError(w http.ResponseWriter, err *InputParseError) {
	h.logger.Info("Invalid request argument", "param", err.Param, "value", err.Value, "error", err.Err)
	WriteError(w, http.StatusBadRequest, ErrorInvalidRequest)
}
