package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/konekte/resourcehub/backend/internal/adapters/database"
	"github.com/konekte/resourcehub/backend/internal/adapters/events"
	"github.com/konekte/resourcehub/backend/internal/api/handlers"
	"github.com/konekte/resourcehub/backend/internal/api/routes"
	"github.com/konekte/resourcehub/backend/internal/application/services"
	"github.com/konekte/resourcehub/backend/internal/domain/providers"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/clients/postgres"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/clients/redis"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/observability"
	"github.com/konekte/resourcehub/backend/pkg/config"
	"github.com/konekte/resourcehub/backend/pkg/secrets"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	loadVaultSecrets()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.App.Env, cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	pgClient.SetMetrics(metrics)

	if cfg.Database.AutoMigrate {
		if err := pgClient.MigrateUp(); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
	}

	// Directory events are optional; without Redis writes are simply not announced.
	var eventBus providers.EventBus
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize Redis client, continuing without directory events")
		} else {
			defer redisClient.Close()
			eventBus = events.NewRedisEventBus(redisClient)
			log.Info().Str("channel", providers.EventChannelDirectory).Msg("directory event bus enabled")
		}
	}

	// Initialize adapters
	userAdapter := database.NewUserAdapter(pgClient)
	serviceProviderAdapter := database.NewServiceProviderAdapter(pgClient)
	reviewAdapter := database.NewReviewAdapter(pgClient)

	// Initialize services
	userService := services.NewUserService(userAdapter, serviceProviderAdapter, reviewAdapter, pgClient)
	serviceProviderService := services.NewServiceProviderService(userAdapter, serviceProviderAdapter, reviewAdapter, pgClient)
	reviewService := services.NewReviewService(userAdapter, serviceProviderAdapter, reviewAdapter, pgClient)

	if eventBus != nil {
		userService.SetEventBus(eventBus)
		serviceProviderService.SetEventBus(eventBus)
		reviewService.SetEventBus(eventBus)
	}

	// Initialize handlers
	router := routes.NewRouter(
		handlers.NewHealthHandler(pgClient),
		handlers.NewUserHandler(userService),
		handlers.NewServiceProviderHandler(serviceProviderService),
		handlers.NewReviewHandler(reviewService),
		cfg.Server.AllowedOrigins,
		metrics,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Error().Err(err).Msg("error closing event bus")
		}
	}

	log.Info().Msg("server stopped")
}

// loadVaultSecrets exports configuration stored in Vault when VAULT_ENABLED is set.
func loadVaultSecrets() {
	result, err := secrets.ApplyVaultSecrets(context.Background(), secrets.LoadVaultConfigFromEnv())
	if err != nil {
		log.Warn().Err(err).Msg("failed to load secrets from Vault, using environment only")
		return
	}
	if result.Loaded > 0 {
		log.Info().Int("loaded", result.Loaded).Int("skipped", result.Skipped).Msg("loaded configuration from Vault")
	}
}
