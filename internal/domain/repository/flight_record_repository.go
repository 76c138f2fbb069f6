package repository

import (
	"context"

	"flight-query-service/internal/domain/entity"
)

// FlightRecordRepository defines the read-only flight lookups.
// Result order is whatever the store returns and is not guaranteed.
type FlightRecordRepository interface {
	GetFlightByID(ctx context.Context, flightID int64) ([]entity.FlightRecord, error)
	GetFlightsByDate(ctx context.Context, day, month, year int) ([]entity.FlightRecord, error)
	GetDelayedFlightsByAirline(ctx context.Context, airlineNamePattern string) ([]entity.FlightRecord, error)
	GetDelayedFlightsByAirport(ctx context.Context, iataCodePattern string) ([]entity.FlightRecord, error)
}
