//go:build integration

package integration

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/konekte/resourcehub/backend/internal/infrastructure/clients/postgres"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/clients/redis"
	"github.com/konekte/resourcehub/backend/pkg/config"
	"github.com/stretchr/testify/require"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func newTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	cfg := &config.RedisConfig{
		Host:     getEnv("TEST_REDIS_HOST", "localhost"),
		Port:     getEnvAsInt("TEST_REDIS_PORT", 6379),
		Password: getEnv("TEST_REDIS_PASSWORD", ""),
		DB:       getEnvAsInt("TEST_REDIS_DB", 0),
	}

	client, err := redis.NewClient(cfg)
	require.NoError(t, err, "Failed to create redis client")
	return client
}

// newTestPostgresClient connects to the test database, applies migrations and
// empties every table.
func newTestPostgresClient(t *testing.T) *postgres.Client {
	t.Helper()

	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("Skipping integration test: TEST_DB_HOST not set")
	}

	cfg := &config.DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnvAsInt("TEST_DB_PORT", 5432),
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		Database: getEnv("TEST_DB_NAME", "resource_hub_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}

	client, err := postgres.NewClient(cfg)
	require.NoError(t, err, "Failed to create postgres client")
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.MigrateUp())
	_, err = client.DB().ExecContext(context.Background(), "TRUNCATE TABLE reviews, service_providers, users")
	require.NoError(t, err)
	return client
}
