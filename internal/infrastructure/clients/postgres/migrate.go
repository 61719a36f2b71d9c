package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/observability"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// ErrNoDSN is returned when migrations are requested on a client that was
// not opened from a DSN.
var ErrNoDSN = errors.New("postgres client has no DSN to migrate with")

// migrator builds a migrate instance on its own connection, so the shared
// pool never loses a slot to the migration lock. Close releases it.
func (c *Client) migrator() (*migrate.Migrate, error) {
	if c.dsn == "" {
		return nil, ErrNoDSN
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	db, err := sql.Open("postgres", c.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// MigrateUp applies all pending schema migrations.
func (c *Client) MigrateUp() error {
	m, err := c.migrator()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	observability.GetLogger().Info().Uint("version", version).Bool("dirty", dirty).Msg("database migrations applied")
	return nil
}

// MigrateDown rolls back the given number of migrations.
func (c *Client) MigrateDown(steps int) error {
	m, err := c.migrator()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}
