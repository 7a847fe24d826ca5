// Package fakeapi implements an in-memory rendition of the expense API.
//
// It serves the same routes, bodies and status codes the client expects
// from the real server, keeps all state in memory and issues HS256 JWT
// session tokens. Tests run it behind httptest; cmd/fakeapi serves it for
// local development.
package fakeapi

import (
	"time"

	"github.com/MKhiriev/go-trackspense/internal/config"
	"github.com/MKhiriev/go-trackspense/internal/logger"
)

// defaultVersion is served by GET /api/version when none is configured.
const defaultVersion = "N/A"

type Handler struct {
	store *memoryStore

	signKey  string
	issuer   string
	tokenTTL time.Duration
	version  string
	now      func() time.Time

	logger *logger.Logger
}

func NewHandler(cfg config.FakeAPI, logger *logger.Logger) *Handler {
	logger.Info().Msg("fake api handler created")

	version := cfg.Version
	if version == "" {
		version = defaultVersion
	}

	return &Handler{
		store:    newMemoryStore(),
		signKey:  cfg.SignKey,
		issuer:   cfg.Issuer,
		tokenTTL: cfg.TokenTTL,
		version:  version,
		now:      time.Now,
		logger:   logger,
	}
}
