package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return NewClientConfig(Defaults())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(cfg *ClientConfig) {}},
		{
			name:    "empty dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = " " },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "endpoint without scheme",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "localhost:8080" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = -time.Second },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero check interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.SessionCheckInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "empty login view",
			mutate:  func(cfg *ClientConfig) { cfg.App.LoginView = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "trackspense.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "login", cfg.App.LoginView)
	assert.Equal(t, time.Minute, cfg.Workers.SessionCheckInterval)
}
