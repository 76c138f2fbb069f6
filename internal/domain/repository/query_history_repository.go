package repository

import (
	"context"

	"flight-query-service/internal/domain/entity"
)

// QueryHistoryRepository defines the interface for storing executed lookups
type QueryHistoryRepository interface {
	Save(ctx context.Context, entry *entity.QueryHistoryEntry) error
}
