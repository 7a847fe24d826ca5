package config

import (
	"errors"
	"testing"
	"time"
)

func TestGetFakeAPIConfig_Defaults(t *testing.T) {
	cfg, err := GetFakeAPIConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Address != ":8080" {
		t.Errorf("Address = %q, want %q", cfg.Address, ":8080")
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v, want %v", cfg.TokenTTL, time.Hour)
	}
	if cfg.SignKey == "" || cfg.Issuer == "" {
		t.Errorf("SignKey and Issuer must have defaults, got %+v", cfg)
	}
}

func TestGetFakeAPIConfig_FromEnv(t *testing.T) {
	t.Setenv("FAKEAPI_ADDRESS", "127.0.0.1:9999")
	t.Setenv("FAKEAPI_TOKEN_TTL", "30s")

	cfg, err := GetFakeAPIConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Address != "127.0.0.1:9999" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if cfg.TokenTTL != 30*time.Second {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
}

func TestGetFakeAPIConfig_Invalid(t *testing.T) {
	t.Setenv("FAKEAPI_TOKEN_TTL", "0s")

	_, err := GetFakeAPIConfig()
	if !errors.Is(err, ErrInvalidFakeAPIConfigs) {
		t.Fatalf("expected ErrInvalidFakeAPIConfigs, got %v", err)
	}
}

func TestGetFakeAPIConfig_Malformed(t *testing.T) {
	t.Setenv("FAKEAPI_TOKEN_TTL", "soon")

	if _, err := GetFakeAPIConfig(); err == nil {
		t.Fatal("expected parse error")
	}
}
