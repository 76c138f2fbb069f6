package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"flight-query-service/internal/domain/repository"
	"flight-query-service/internal/infrastructure/config"
	"flight-query-service/internal/infrastructure/persistence"
	"flight-query-service/internal/infrastructure/router"
	"flight-query-service/internal/interface/api"
	flightRepo "flight-query-service/internal/interface/repository"
	"flight-query-service/internal/usecase"
	"flight-query-service/pkg/logger"
	"flight-query-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Flight Query Service", "version", cfg.AppVersion)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection pool
	log.Info("Connecting to PostgreSQL")
	pg, err := persistence.NewPostgres(ctx, persistence.PostgresConfig{
		URI:                cfg.PostgresURI,
		MaxOpenConns:       cfg.MaxOpenConns,
		MaxIdleConns:       cfg.MaxIdleConns,
		ConnMaxLifetime:    cfg.ConnMaxLifetime,
		SlowQueryThreshold: cfg.SlowQueryThreshold,
	}, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Query history is optional
	var historyRepo repository.QueryHistoryRepository
	var mongo *persistence.Mongo
	if cfg.QueryHistoryEnabled {
		log.Info("Connecting to MongoDB")
		mongo, err = persistence.NewMongo(ctx, persistence.MongoConfig{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDB,
			Username: cfg.MongoUser,
			Password: cfg.MongoPassword,
		})
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		historyRepo = flightRepo.NewMongoQueryHistoryRepository(mongo.Database())
	}

	// Set up repositories and use case
	executor := flightRepo.NewGormQueryExecutor(pg.DB, log.With("component", "query_executor"))
	flightRecordRepo := flightRepo.NewFlightRecordRepository(executor)
	appMetrics := metrics.NewMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)
	flightQueries := usecase.NewFlightQueryService(flightRecordRepo, historyRepo, appMetrics, log.With("component", "flight_queries"))

	handler := router.NewHTTPRouter(router.Handlers{
		Flights: api.NewFlightHandler(flightQueries, log.With("component", "http")),
		Health:  api.NewHealthHandler(pg, log),
		Metrics: promhttp.Handler(),
	}, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := pg.Close(); err != nil {
		log.Error("PostgreSQL close error", "error", err)
	}

	if mongo != nil {
		if err := mongo.Close(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("Flight Query Service stopped")
}
