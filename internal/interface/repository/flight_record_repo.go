package repository

import (
	"context"

	"flight-query-service/internal/domain/entity"
	"flight-query-service/internal/domain/repository"
)

// Template names reported in QueryExecutionError and executor logs
const (
	TemplateFlightByID              = "flight_by_id"
	TemplateFlightsByDate           = "flights_by_date"
	TemplateDelayedFlightsByAirline = "delayed_flights_by_airline"
	TemplateDelayedFlightsByAirport = "delayed_flights_by_airport"
)

var (
	queryFlightByID = repository.QueryTemplate{
		Name: TemplateFlightByID,
		SQL: "SELECT airlines.airline AS airline, flights.id AS id, flights.origin_airport AS origin_airport, " +
			"flights.destination_airport AS destination_airport, flights.departure_delay AS delay " +
			"FROM flights JOIN airlines ON flights.airline = airlines.id " +
			"WHERE flights.id = @id",
	}

	queryFlightsByDate = repository.QueryTemplate{
		Name: TemplateFlightsByDate,
		SQL: "SELECT airlines.airline AS airline, flights.id AS id, flights.origin_airport AS origin_airport, " +
			"flights.destination_airport AS destination_airport, flights.departure_delay AS delay " +
			"FROM flights JOIN airlines ON flights.airline = airlines.id " +
			"WHERE flights.day = @day AND flights.month = @month AND flights.year = @year",
	}

	queryDelayedFlightsByAirline = repository.QueryTemplate{
		Name: TemplateDelayedFlightsByAirline,
		SQL: "SELECT airlines.airline AS airline, flights.id AS id, flights.origin_airport AS origin_airport, " +
			"flights.destination_airport AS destination_airport, flights.departure_delay AS delay " +
			"FROM flights JOIN airlines ON flights.airline = airlines.id " +
			"WHERE airlines.airline LIKE @airline_name " +
			"AND flights.departure_delay IS NOT NULL AND flights.departure_delay > 0",
	}

	queryDelayedFlightsByAirport = repository.QueryTemplate{
		Name: TemplateDelayedFlightsByAirport,
		SQL: "SELECT airlines.airline AS airline, flights.id AS id, flights.origin_airport AS origin_airport, " +
			"flights.destination_airport AS destination_airport, flights.departure_delay AS delay " +
			"FROM flights JOIN airlines ON flights.airline = airlines.id " +
			"WHERE flights.origin_airport LIKE @iata_code " +
			"AND flights.departure_delay IS NOT NULL AND flights.departure_delay > 0",
	}
)

// FlightRecordRepo implements FlightRecordRepository on top of a QueryExecutor
type FlightRecordRepo struct {
	executor repository.QueryExecutor
}

// NewFlightRecordRepository creates a new flight record repository
func NewFlightRecordRepository(executor repository.QueryExecutor) repository.FlightRecordRepository {
	return &FlightRecordRepo{
		executor: executor,
	}
}

// GetFlightByID returns the flight with the given ID, or an empty slice
func (r *FlightRecordRepo) GetFlightByID(ctx context.Context, flightID int64) ([]entity.FlightRecord, error) {
	return r.executor.Execute(ctx, queryFlightByID, entity.QueryParams{"id": flightID})
}

// GetFlightsByDate returns every flight scheduled on the given day
func (r *FlightRecordRepo) GetFlightsByDate(ctx context.Context, day, month, year int) ([]entity.FlightRecord, error) {
	return r.executor.Execute(ctx, queryFlightsByDate, entity.QueryParams{
		"day":   day,
		"month": month,
		"year":  year,
	})
}

// GetDelayedFlightsByAirline matches airlineNamePattern with LIKE, so "%"
// and "_" act as wildcards. Matching is case-sensitive.
func (r *FlightRecordRepo) GetDelayedFlightsByAirline(ctx context.Context, airlineNamePattern string) ([]entity.FlightRecord, error) {
	return r.executor.Execute(ctx, queryDelayedFlightsByAirline, entity.QueryParams{"airline_name": airlineNamePattern})
}

// GetDelayedFlightsByAirport matches the origin airport code with LIKE
func (r *FlightRecordRepo) GetDelayedFlightsByAirport(ctx context.Context, iataCodePattern string) ([]entity.FlightRecord, error) {
	return r.executor.Execute(ctx, queryDelayedFlightsByAirport, entity.QueryParams{"iata_code": iataCodePattern})
}
