package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// FakeAPI holds the settings of the in-memory expense API used for local
// development and tests.
type FakeAPI struct {
	// Address is the listen address.
	// Env: FAKEAPI_ADDRESS
	Address string `env:"ADDRESS" envDefault:":8080"`

	// SignKey signs the issued session tokens.
	// Env: FAKEAPI_SIGN_KEY
	SignKey string `env:"SIGN_KEY" envDefault:"trackspense-dev-sign-key"`

	// Issuer is the "iss" claim of the issued tokens.
	// Env: FAKEAPI_ISSUER
	Issuer string `env:"ISSUER" envDefault:"trackspense-fake-api"`

	// TokenTTL is the lifetime of an issued token.
	// Env: FAKEAPI_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"1h"`

	// Version is served by GET /api/version. cmd/fakeapi fills it from the
	// build version when unset.
	// Env: FAKEAPI_VERSION
	Version string `env:"VERSION"`
}

// GetFakeAPIConfig reads the FAKEAPI_* environment variables.
func GetFakeAPIConfig() (*FakeAPI, error) {
	cfg := &FakeAPI{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "FAKEAPI_"}); err != nil {
		return nil, fmt.Errorf("error getting fake api env configs: %w", err)
	}

	return cfg, cfg.validate()
}

func (cfg *FakeAPI) validate() error {
	if strings.TrimSpace(cfg.Address) == "" || cfg.SignKey == "" || cfg.Issuer == "" || cfg.TokenTTL <= 0 {
		return ErrInvalidFakeAPIConfigs
	}
	return nil
}
