package usecase

import (
	"context"
	"errors"
	"testing"

	"flight-query-service/internal/domain/entity"
	"flight-query-service/internal/domain/repository"
	"flight-query-service/pkg/logger"
	"flight-query-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFlightRepo struct {
	records []entity.FlightRecord
	err     error
	calls   []string
}

func (r *stubFlightRepo) GetFlightByID(ctx context.Context, flightID int64) ([]entity.FlightRecord, error) {
	r.calls = append(r.calls, OperationFlightByID)
	return r.records, r.err
}

func (r *stubFlightRepo) GetFlightsByDate(ctx context.Context, day, month, year int) ([]entity.FlightRecord, error) {
	r.calls = append(r.calls, OperationFlightsByDate)
	return r.records, r.err
}

func (r *stubFlightRepo) GetDelayedFlightsByAirline(ctx context.Context, airlineNamePattern string) ([]entity.FlightRecord, error) {
	r.calls = append(r.calls, OperationDelayedFlightsByAirline)
	return r.records, r.err
}

func (r *stubFlightRepo) GetDelayedFlightsByAirport(ctx context.Context, iataCodePattern string) ([]entity.FlightRecord, error) {
	r.calls = append(r.calls, OperationDelayedFlightsByAirport)
	return r.records, r.err
}

type memoryHistoryRepo struct {
	entries []*entity.QueryHistoryEntry
	err     error
}

func (r *memoryHistoryRepo) Save(ctx context.Context, entry *entity.QueryHistoryEntry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entry)
	return nil
}

func newTestService(repo *stubFlightRepo, history repository.QueryHistoryRepository) (*FlightQueryService, *metrics.Metrics) {
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	return NewFlightQueryService(repo, history, m, logger.NewNopLogger()), m
}

func TestFlightQueryService_ReturnsRecordsUnchanged(t *testing.T) {
	delay := int64(15)
	want := []entity.FlightRecord{{Airline: "Delta", ID: 1, OriginAirport: "JFK", DestinationAirport: "LAX", Delay: &delay}}
	repo := &stubFlightRepo{records: want}
	history := &memoryHistoryRepo{}
	svc, m := newTestService(repo, history)

	got, err := svc.GetFlightByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues(OperationFlightByID, entity.QueryStatusOK)))
	require.Len(t, history.entries, 1)
	assert.Equal(t, OperationFlightByID, history.entries[0].Operation)
	assert.Equal(t, entity.QueryParams{"id": int64(1)}, history.entries[0].Params)
	assert.Equal(t, 1, history.entries[0].RowCount)
	assert.Equal(t, entity.QueryStatusOK, history.entries[0].Status)
}

func TestFlightQueryService_EmptyResultIsNotAnError(t *testing.T) {
	repo := &stubFlightRepo{records: []entity.FlightRecord{}}
	history := &memoryHistoryRepo{}
	svc, m := newTestService(repo, history)

	got, err := svc.GetFlightsByDate(context.Background(), 1, 1, 2015)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues(OperationFlightsByDate, entity.QueryStatusEmpty)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ErrorsCount.WithLabelValues(OperationFlightsByDate)))
	require.Len(t, history.entries, 1)
	assert.Equal(t, entity.QueryStatusEmpty, history.entries[0].Status)
}

func TestFlightQueryService_PropagatesErrors(t *testing.T) {
	cause := &repository.QueryExecutionError{
		Template: OperationDelayedFlightsByAirline,
		Code:     repository.ErrorCodeDatabaseUnavailable,
		Err:      errors.New("connection refused"),
	}
	repo := &stubFlightRepo{err: cause}
	history := &memoryHistoryRepo{}
	svc, m := newTestService(repo, history)

	got, err := svc.GetDelayedFlightsByAirline(context.Background(), "Delta")
	assert.Nil(t, got)
	assert.Same(t, cause, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsCount.WithLabelValues(OperationDelayedFlightsByAirline)))
	require.Len(t, history.entries, 1)
	assert.Equal(t, entity.QueryStatusError, history.entries[0].Status)
	assert.Equal(t, repository.ErrorCodeDatabaseUnavailable, history.entries[0].ErrorCode)
}

func TestFlightQueryService_HistoryFailureDoesNotChangeResult(t *testing.T) {
	want := []entity.FlightRecord{{Airline: "Delta", ID: 4, OriginAirport: "JFK", DestinationAirport: "LAX"}}
	repo := &stubFlightRepo{records: want}
	svc, m := newTestService(repo, &memoryHistoryRepo{err: errors.New("mongo down")})

	got, err := svc.GetDelayedFlightsByAirport(context.Background(), "JFK")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsCount.WithLabelValues("query_history")))
}

func TestFlightQueryService_WithoutHistoryOrMetrics(t *testing.T) {
	repo := &stubFlightRepo{records: []entity.FlightRecord{{ID: 1}}}
	svc := NewFlightQueryService(repo, nil, nil, logger.NewNopLogger())

	_, err := svc.GetFlightByID(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.GetFlightsByDate(context.Background(), 1, 1, 2015)
	require.NoError(t, err)
	_, err = svc.GetDelayedFlightsByAirline(context.Background(), "Delta")
	require.NoError(t, err)
	_, err = svc.GetDelayedFlightsByAirport(context.Background(), "JFK")
	require.NoError(t, err)

	assert.Equal(t, []string{
		OperationFlightByID,
		OperationFlightsByDate,
		OperationDelayedFlightsByAirline,
		OperationDelayedFlightsByAirport,
	}, repo.calls)
}
