package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-trackspense/internal/config"
	"github.com/MKhiriev/go-trackspense/internal/fakeapi"
	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/internal/server"
	"github.com/MKhiriev/go-trackspense/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range buildInfo.Lines() {
		fmt.Println(line)
	}

	log := logger.New(os.Stdout, "trackspense-fake-api")
	cfg, err := config.GetFakeAPIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Version == "" {
		cfg.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Address).
		Str("issuer", cfg.Issuer).
		Str("version", cfg.Version).
		Dur("token_ttl", cfg.TokenTTL).
		Msg("received configs")

	handler := fakeapi.NewHandler(*cfg, log)
	srv, err := server.NewServer(handler.Init(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
