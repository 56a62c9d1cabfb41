package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/buy-from-me/internal/adapter"
	"github.com/MKhiriev/buy-from-me/internal/config"
	"github.com/MKhiriev/buy-from-me/internal/handler"
	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/metrics"
	"github.com/MKhiriev/buy-from-me/internal/server"
	"github.com/MKhiriev/buy-from-me/internal/service"
	"github.com/MKhiriev/buy-from-me/internal/store"
	"github.com/MKhiriev/buy-from-me/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("buy-from-me-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Info().Str("build", buildInfo.String()).Msg("starting buy-from-me server")

	metrics.MustRegister(prometheus.DefaultRegisterer)

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	notifier, err := adapter.NewSMTPNotifier(cfg.Mail, cfg.App.BaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail notifier")
	}

	services, err := service.NewServices(storages, notifier, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newBuildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
