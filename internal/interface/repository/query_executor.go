package repository

import (
	"context"
	"database/sql"
	"time"

	"flight-query-service/internal/domain/entity"
	"flight-query-service/internal/domain/repository"
	"flight-query-service/pkg/logger"

	"gorm.io/gorm"
)

// flightRow is the scan target shared by every flight template
type flightRow struct {
	Airline            string        `gorm:"column:airline"`
	ID                 int64         `gorm:"column:id"`
	OriginAirport      string        `gorm:"column:origin_airport"`
	DestinationAirport string        `gorm:"column:destination_airport"`
	Delay              sql.NullInt64 `gorm:"column:delay"`
}

func (r flightRow) toEntity() entity.FlightRecord {
	record := entity.FlightRecord{
		Airline:            r.Airline,
		ID:                 r.ID,
		OriginAirport:      r.OriginAirport,
		DestinationAirport: r.DestinationAirport,
	}
	if r.Delay.Valid {
		delay := r.Delay.Int64
		record.Delay = &delay
	}
	return record
}

// GormQueryExecutor implements the QueryExecutor interface
type GormQueryExecutor struct {
	db  *gorm.DB
	log logger.Logger
}

// NewGormQueryExecutor creates a new executor over a shared gorm handle
func NewGormQueryExecutor(db *gorm.DB, log logger.Logger) repository.QueryExecutor {
	return &GormQueryExecutor{
		db:  db,
		log: log,
	}
}

// Execute binds params to the template's @name placeholders and maps every
// returned row by column name. The pooled connection is released before
// Execute returns.
func (e *GormQueryExecutor) Execute(ctx context.Context, tpl repository.QueryTemplate, params entity.QueryParams) ([]entity.FlightRecord, error) {
	start := time.Now()

	var rows []flightRow
	var result *gorm.DB
	if len(params) == 0 {
		result = e.db.WithContext(ctx).Raw(tpl.SQL).Scan(&rows)
	} else {
		// gorm only resolves named placeholders from a plain map
		result = e.db.WithContext(ctx).Raw(tpl.SQL, map[string]interface{}(params)).Scan(&rows)
	}
	if result.Error != nil {
		return nil, translateError(tpl.Name, result.Error)
	}

	records := make([]entity.FlightRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toEntity())
	}

	e.log.Debug("Query executed",
		"template", tpl.Name,
		"rows", len(records),
		"elapsedMs", time.Since(start).Milliseconds(),
	)

	return records, nil
}
