package usecase

import (
	"context"
	"errors"
	"time"

	"flight-query-service/internal/domain/entity"
	"flight-query-service/internal/domain/repository"
	"flight-query-service/pkg/logger"
	"flight-query-service/pkg/metrics"
)

// Operation names used for metrics, logs and query history
const (
	OperationFlightByID              = "flight_by_id"
	OperationFlightsByDate           = "flights_by_date"
	OperationDelayedFlightsByAirline = "delayed_flights_by_airline"
	OperationDelayedFlightsByAirport = "delayed_flights_by_airport"
)

const historyWriteTimeout = 2 * time.Second

// FlightQuerier is what the HTTP layer needs from the use case
type FlightQuerier interface {
	GetFlightByID(ctx context.Context, flightID int64) ([]entity.FlightRecord, error)
	GetFlightsByDate(ctx context.Context, day, month, year int) ([]entity.FlightRecord, error)
	GetDelayedFlightsByAirline(ctx context.Context, airlineNamePattern string) ([]entity.FlightRecord, error)
	GetDelayedFlightsByAirport(ctx context.Context, iataCodePattern string) ([]entity.FlightRecord, error)
}

// FlightQueryService wraps the flight repository with metrics, logging
// and optional query history. Results and errors pass through unchanged.
type FlightQueryService struct {
	flightRepo  repository.FlightRecordRepository
	historyRepo repository.QueryHistoryRepository
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewFlightQueryService creates a new flight query service.
// historyRepo may be nil to disable query history.
func NewFlightQueryService(
	flightRepo repository.FlightRecordRepository,
	historyRepo repository.QueryHistoryRepository,
	m *metrics.Metrics,
	log logger.Logger,
) *FlightQueryService {
	return &FlightQueryService{
		flightRepo:  flightRepo,
		historyRepo: historyRepo,
		metrics:     m,
		logger:      log,
	}
}

var _ FlightQuerier = (*FlightQueryService)(nil)

// GetFlightByID looks up a single flight
func (s *FlightQueryService) GetFlightByID(ctx context.Context, flightID int64) ([]entity.FlightRecord, error) {
	params := entity.QueryParams{"id": flightID}
	return s.run(ctx, OperationFlightByID, params, func() ([]entity.FlightRecord, error) {
		return s.flightRepo.GetFlightByID(ctx, flightID)
	})
}

// GetFlightsByDate looks up all flights on a date
func (s *FlightQueryService) GetFlightsByDate(ctx context.Context, day, month, year int) ([]entity.FlightRecord, error) {
	params := entity.QueryParams{"day": day, "month": month, "year": year}
	return s.run(ctx, OperationFlightsByDate, params, func() ([]entity.FlightRecord, error) {
		return s.flightRepo.GetFlightsByDate(ctx, day, month, year)
	})
}

// GetDelayedFlightsByAirline looks up delayed flights of matching airlines
func (s *FlightQueryService) GetDelayedFlightsByAirline(ctx context.Context, airlineNamePattern string) ([]entity.FlightRecord, error) {
	params := entity.QueryParams{"airline_name": airlineNamePattern}
	return s.run(ctx, OperationDelayedFlightsByAirline, params, func() ([]entity.FlightRecord, error) {
		return s.flightRepo.GetDelayedFlightsByAirline(ctx, airlineNamePattern)
	})
}

// GetDelayedFlightsByAirport looks up delayed departures from matching airports
func (s *FlightQueryService) GetDelayedFlightsByAirport(ctx context.Context, iataCodePattern string) ([]entity.FlightRecord, error) {
	params := entity.QueryParams{"iata_code": iataCodePattern}
	return s.run(ctx, OperationDelayedFlightsByAirport, params, func() ([]entity.FlightRecord, error) {
		return s.flightRepo.GetDelayedFlightsByAirport(ctx, iataCodePattern)
	})
}

func (s *FlightQueryService) run(
	ctx context.Context,
	operation string,
	params entity.QueryParams,
	query func() ([]entity.FlightRecord, error),
) ([]entity.FlightRecord, error) {
	start := time.Now()
	records, err := query()
	elapsed := time.Since(start)

	status := entity.QueryStatusOK
	errorCode := ""
	switch {
	case err != nil:
		status = entity.QueryStatusError
		errorCode = repository.ErrorCodeInternalError

		var qe *repository.QueryExecutionError
		if errors.As(err, &qe) {
			errorCode = qe.Code
		}
		s.logger.Error("Flight query failed",
			"operation", operation,
			"code", errorCode,
			"error", err,
		)
	case len(records) == 0:
		status = entity.QueryStatusEmpty
		s.logger.Info("Flight query returned no rows", "operation", operation)
	}

	s.observe(operation, status, len(records), elapsed)
	s.recordHistory(ctx, &entity.QueryHistoryEntry{
		Operation:  operation,
		Params:     params,
		Status:     status,
		RowCount:   len(records),
		ErrorCode:  errorCode,
		DurationMs: elapsed.Milliseconds(),
		CreatedAt:  start,
	})

	return records, err
}

func (s *FlightQueryService) observe(operation, status string, rows int, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}

	s.metrics.QueriesTotal.WithLabelValues(operation, status).Inc()
	s.metrics.QueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if status == entity.QueryStatusError {
		s.metrics.ErrorsCount.WithLabelValues(operation).Inc()
		return
	}
	s.metrics.RowsReturned.WithLabelValues(operation).Observe(float64(rows))
}

// recordHistory never affects the lookup result
func (s *FlightQueryService) recordHistory(ctx context.Context, entry *entity.QueryHistoryEntry) {
	if s.historyRepo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), historyWriteTimeout)
	defer cancel()

	if err := s.historyRepo.Save(ctx, entry); err != nil {
		s.logger.Warn("Failed to save query history", "operation", entry.Operation, "error", err)
		if s.metrics != nil {
			s.metrics.ErrorsCount.WithLabelValues("query_history").Inc()
		}
	}
}
