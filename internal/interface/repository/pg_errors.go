package repository

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"strings"

	"flight-query-service/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

// sqlStateClassToCode maps the two-character SQLSTATE class to an error code
var sqlStateClassToCode = map[string]string{
	"08": repository.ErrorCodeDatabaseUnavailable, // connection_exception
	"53": repository.ErrorCodeDatabaseUnavailable, // insufficient_resources
	"57": repository.ErrorCodeDatabaseUnavailable, // operator_intervention
	"42": repository.ErrorCodeInvalidQuery,        // syntax_error_or_access_rule_violation
	"22": repository.ErrorCodeInvalidQuery,        // data_exception
}

const sqlStateQueryCanceled = "57014"

// translateError wraps a driver failure into a QueryExecutionError
func translateError(template string, err error) *repository.QueryExecutionError {
	var qe *repository.QueryExecutionError
	if errors.As(err, &qe) {
		return qe
	}

	return &repository.QueryExecutionError{
		Template: template,
		Code:     classify(err),
		Err:      err,
	}
}

func classify(err error) string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return repository.ErrorCodeQueryTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == sqlStateQueryCanceled {
			return repository.ErrorCodeQueryTimeout
		}
		if len(pgErr.Code) >= 2 {
			if code, ok := sqlStateClassToCode[pgErr.Code[:2]]; ok {
				return code
			}
		}
		return repository.ErrorCodeInternalError
	}

	if errors.Is(err, sql.ErrConnDone) {
		return repository.ErrorCodeDatabaseUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return repository.ErrorCodeDatabaseUnavailable
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return repository.ErrorCodeDatabaseUnavailable
	}

	// database/sql reports a closed pool as a plain error
	if strings.Contains(err.Error(), "database is closed") {
		return repository.ErrorCodeDatabaseUnavailable
	}

	return repository.ErrorCodeInternalError
}
