package repository

import "fmt"

// Query execution error codes
const (
	ErrorCodeDatabaseUnavailable = "DATABASE_UNAVAILABLE"
	ErrorCodeInvalidQuery        = "INVALID_QUERY"
	ErrorCodeQueryTimeout        = "QUERY_TIMEOUT"
	ErrorCodeInternalError       = "INTERNAL_ERROR"
)

// QueryExecutionError is returned when the store fails to run a template.
// Zero matching rows is never reported through this type.
type QueryExecutionError struct {
	Template string
	Code     string
	Err      error
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("query %s failed (%s): %v", e.Template, e.Code, e.Err)
}

func (e *QueryExecutionError) Unwrap() error {
	return e.Err
}
