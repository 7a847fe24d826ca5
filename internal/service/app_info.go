package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trackspense/internal/adapter"
	"github.com/MKhiriev/go-trackspense/internal/logger"
)

// UnknownVersion is reported when the API answers with an empty version.
const UnknownVersion = "N/A"

type appInfoService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewAppInfoService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) AppInfoService {
	return &appInfoService{adapter: serverAdapter, logger: logger}
}

func (s *appInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.ServerVersion(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*appInfoService.ServerVersion").Msg("failed to get server version")
		return "", fmt.Errorf("server version: %w", err)
	}
	if version == "" {
		return UnknownVersion, nil
	}
	return version, nil
}
