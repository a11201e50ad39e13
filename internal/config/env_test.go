package config

import (
	"testing"
	"time"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")
	t.Setenv("AUTH_TOKEN_DURATION", "2h")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/viajero")
	t.Setenv("SERVER_ADDRESS", "localhost:9999")
	t.Setenv("CLIENT_SERVER_URL", "http://localhost:9999")

	var cfg StructuredConfig
	if err := parseEnv(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Auth.TokenSignKey != "env-secret" {
		t.Errorf("expected token sign key from env, got %q", cfg.Auth.TokenSignKey)
	}
	if cfg.Auth.TokenIssuer != "env-issuer" {
		t.Errorf("expected issuer from env, got %q", cfg.Auth.TokenIssuer)
	}
	if cfg.Auth.TokenDuration != 2*time.Hour {
		t.Errorf("expected 2h duration, got %v", cfg.Auth.TokenDuration)
	}
	if cfg.Storage.DB.DSN != "postgres://localhost/viajero" {
		t.Errorf("expected DSN from env, got %q", cfg.Storage.DB.DSN)
	}
	if cfg.Server.HTTPAddress != "localhost:9999" {
		t.Errorf("expected address from env, got %q", cfg.Server.HTTPAddress)
	}
	if cfg.Client.ServerURL != "http://localhost:9999" {
		t.Errorf("expected client URL from env, got %q", cfg.Client.ServerURL)
	}
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	var cfg StructuredConfig
	if err := parseEnv(&cfg); err == nil {
		t.Error("expected error for unparseable duration")
	}
}
