package entity

import "time"

// QueryParams maps a template placeholder name to its scalar value
type QueryParams map[string]interface{}

// Query history statuses
const (
	QueryStatusOK    = "ok"
	QueryStatusEmpty = "empty"
	QueryStatusError = "error"
)

// QueryHistoryEntry records a single flight lookup
type QueryHistoryEntry struct {
	ID         string      `bson:"_id,omitempty"`
	Operation  string      `bson:"operation"`
	Params     QueryParams `bson:"params"`
	Status     string      `bson:"status"`
	RowCount   int         `bson:"rowCount"`
	ErrorCode  string      `bson:"errorCode,omitempty"`
	DurationMs int64       `bson:"durationMs"`
	CreatedAt  time.Time   `bson:"createdAt"`
}
