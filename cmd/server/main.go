package main

import (
	"context"
	"fmt"

	"github.com/velikanov/codeshelf/internal/config"
	"github.com/velikanov/codeshelf/internal/crypto"
	httphandler "github.com/velikanov/codeshelf/internal/handler/http"
	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/internal/server"
	"github.com/velikanov/codeshelf/internal/service"
	"github.com/velikanov/codeshelf/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("codeshelf-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, cfg.Catalog, log)

	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)
	services := service.NewServices(repositories, hasher, cfg.Auth, log)

	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
