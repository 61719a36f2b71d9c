//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/konekte/resourcehub/backend/internal/adapters/database"
	"github.com/konekte/resourcehub/backend/internal/adapters/events"
	"github.com/konekte/resourcehub/backend/internal/application/services"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/konekte/resourcehub/backend/internal/domain/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryEventsIntegration(t *testing.T) {
	if os.Getenv("TEST_REDIS_HOST") == "" {
		t.Skip("Skipping integration test: TEST_REDIS_HOST not set")
	}

	client := newTestPostgresClient(t)
	redisClient := newTestRedisClient(t)
	defer redisClient.Close()

	eventBus := events.NewRedisEventBus(redisClient)
	defer eventBus.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	received, err := eventBus.Subscribe(ctx, providers.EventChannelDirectory)
	require.NoError(t, err)

	users := database.NewUserAdapter(client)
	userService := services.NewUserService(users, database.NewServiceProviderAdapter(client), database.NewReviewAdapter(client), client)
	userService.SetEventBus(eventBus)

	user, err := userService.Create(ctx, services.CreateUserInput{Name: "Jean Pierre", Email: "jean@x.com"})
	require.NoError(t, err)

	select {
	case event := <-received:
		assert.Equal(t, entities.EventUserCreated, event.Type)
		assert.Equal(t, user.ID, event.EntityID)
	case <-ctx.Done():
		t.Fatal("timed out waiting for user.created event")
	}
}
