package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/konekte/resourcehub/backend/internal/infrastructure/clients/postgres"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/observability"
	"github.com/konekte/resourcehub/backend/pkg/config"
	"github.com/konekte/resourcehub/backend/pkg/secrets"
	"github.com/rs/zerolog/log"
)

func main() {
	steps := flag.Int("steps", 1, "number of migrations to roll back with down")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-steps n] up|down\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	loadVaultSecrets()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	observability.InitLogger("resource-hub-migrate", cfg.App.Env, cfg.App.LogLevel)

	client, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer client.Close()

	switch flag.Arg(0) {
	case "up":
		err = client.MigrateUp()
	case "down":
		if *steps < 1 {
			log.Fatal().Int("steps", *steps).Msg("steps must be at least 1")
		}
		err = client.MigrateDown(*steps)
		if err == nil {
			log.Info().Int("steps", *steps).Msg("migrations rolled back")
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		client.Close()
		log.Fatal().Err(err).Str("direction", flag.Arg(0)).Msg("migration failed")
	}
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
