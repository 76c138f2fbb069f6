package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"flight-query-service/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const pingTimeout = 10 * time.Second

// PostgresConfig holds the connection and pool settings for the flights store
type PostgresConfig struct {
	URI                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetime    time.Duration
	SlowQueryThreshold time.Duration
}

// Postgres owns the process-wide gorm handle and its connection pool.
// Open it once at startup and Close it once at shutdown.
type Postgres struct {
	DB    *gorm.DB
	sqlDB *sql.DB
	log   logger.Logger
}

// NewPostgres opens the pool and verifies the store is reachable
func NewPostgres(ctx context.Context, cfg PostgresConfig, log logger.Logger) (*Postgres, error) {
	return NewPostgresWithDialector(ctx, postgres.Open(cfg.URI), cfg, log)
}

// NewPostgresWithDialector is NewPostgres for a caller-supplied dialector
func NewPostgresWithDialector(ctx context.Context, dialector gorm.Dialector, cfg PostgresConfig, log logger.Logger) (*Postgres, error) {
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 NewGormLogger(log, cfg.SlowQueryThreshold),
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	return newPostgres(ctx, gormDB, cfg, log)
}

func newPostgres(ctx context.Context, gormDB *gorm.DB, cfg PostgresConfig, log logger.Logger) (*Postgres, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	p := &Postgres{DB: gormDB, sqlDB: sqlDB, log: log}

	if err := p.Ping(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	log.Info("Connected to PostgreSQL", "maxOpenConns", cfg.MaxOpenConns)
	return p, nil
}

// Ping checks the store with a bounded timeout
func (p *Postgres) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return p.sqlDB.PingContext(ctx)
}

// Close releases every pooled connection
func (p *Postgres) Close() error {
	p.log.Info("Closing PostgreSQL connection pool")
	return p.sqlDB.Close()
}
