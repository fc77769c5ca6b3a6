package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/config"
	myHTTP "github.com/MKhiriev/go-phonebook/internal/handler/http"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/server"
	"github.com/MKhiriev/go-phonebook/internal/service"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/migrations"
	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("phonebook-server")

	// local development convenience; in production the environment is
	// populated by the process manager
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on process environment")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying database migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, *cfg, log)
	handler := myHTTP.NewHandler(services, *cfg, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
