package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/observability"
	"github.com/konekte/resourcehub/backend/pkg/config"
	apperrors "github.com/konekte/resourcehub/backend/pkg/errors"
	"github.com/konekte/resourcehub/backend/pkg/retry"
	_ "github.com/lib/pq"
)

// Executor is satisfied by both *sqlx.DB and *sqlx.Tx.
type Executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Client represents a PostgreSQL database client
type Client struct {
	db      *sqlx.DB
	dsn     string
	metrics *observability.Metrics
}

// NewClient creates a new PostgreSQL client with exponential backoff retry
func NewClient(cfg *config.DatabaseConfig) (*Client, error) {
	db, err := sqlx.Open("postgres", cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	logger := observability.GetLogger()
	err = retry.Do(
		context.Background(),
		retry.DefaultConfig(),
		"PostgreSQL",
		func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return db.PingContext(ctx)
		},
		func(attempt int, err error, nextDelay time.Duration) {
			logger.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", nextDelay).Msg("PostgreSQL connection attempt failed")
		},
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL after retries: %w", err)
	}

	logger.Info().Str("host", cfg.Host).Str("database", cfg.Database).Msg("connected to PostgreSQL")
	return &Client{db: db, dsn: cfg.DatabaseDSN()}, nil
}

// NewClientFromDB wraps an already opened connection. Tests use it with sqlmock.
// Such a client has no DSN and cannot run migrations.
func NewClientFromDB(db *sql.DB, driverName string) *Client {
	return &Client{db: sqlx.NewDb(db, driverName)}
}

// SetMetrics enables DB query duration metrics.
func (c *Client) SetMetrics(metrics *observability.Metrics) {
	c.metrics = metrics
}

// DB returns the underlying database connection
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping verifies the connection to the database
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Track starts a span for a store operation. The returned func ends it,
// records the query duration and marks the span failed when *errp holds a
// store failure. Not-found results are expected outcomes and stay unmarked.
func (c *Client) Track(ctx context.Context, operation string) (context.Context, func(errp *error)) {
	ctx, span := observability.StartSpan(ctx, "db."+operation)
	start := time.Now()
	return ctx, func(errp *error) {
		if c.metrics != nil {
			observability.RecordDBMetric(ctx, c.metrics, operation, time.Since(start))
		}
		if errp != nil && *errp != nil && !apperrors.IsNotFound(*errp) {
			observability.RecordError(span, *errp)
		}
		span.End()
	}
}
