package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWKS_URL", "https://idp.test/jwks.json")
	t.Setenv("AUTH_ISSUER", "https://idp.test/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ServiceName != "board-api" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.Addr() != ":8190" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_RequiresAuthSettings(t *testing.T) {
	t.Setenv("AUTH_JWKS_URL", "")
	t.Setenv("AUTH_ISSUER", "https://idp.test/")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail without AUTH_JWKS_URL")
	}

	t.Setenv("AUTH_JWKS_URL", "https://idp.test/jwks.json")
	t.Setenv("AUTH_ISSUER", "")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail without AUTH_ISSUER")
	}
}

func TestLoad_SplitsCORSOrigins(t *testing.T) {
	t.Setenv("AUTH_JWKS_URL", "https://idp.test/jwks.json")
	t.Setenv("AUTH_ISSUER", "https://idp.test/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test,https://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}
