package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-todo-server/internal/config"
	handler "github.com/MKhiriev/go-todo-server/internal/handler/http"
	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/internal/server"
	"github.com/MKhiriev/go-todo-server/internal/service"
	"github.com/MKhiriev/go-todo-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-todo-server")
	if err := run(log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}

	log.Info().Msg("I am officially alive!")
	log.Debug().Any("server", cfg.Server).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg.App, log)
	h := handler.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
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
