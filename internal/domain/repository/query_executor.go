package repository

import (
	"context"

	"flight-query-service/internal/domain/entity"
)

// QueryTemplate is a static SQL statement with @name placeholders.
// Every template selects the columns airline, id, origin_airport,
// destination_airport and delay.
type QueryTemplate struct {
	Name string
	SQL  string
}

// QueryExecutor runs a template against the store and maps rows to flight records
type QueryExecutor interface {
	Execute(ctx context.Context, tpl QueryTemplate, params entity.QueryParams) ([]entity.FlightRecord, error)
}
