package config

import (
	"errors"
	"reflect"
	"testing"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); !errors.Is(err, ErrMissingJWTSecret) {
		t.Errorf("Load without JWT_SECRET = %v, want ErrMissingJWTSecret", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	for _, key := range []string{"SERVER_PORT", "GIN_MODE", "GEMINI_MODEL", "MAX_UPLOAD_SIZE_MB", "COOKIE_SECURE", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.GeminiModel != "gemini-2.5-flash-lite" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.MaxUploadBytes != 5*1024*1024 {
		t.Errorf("MaxUploadBytes = %d, want 5 MiB", cfg.MaxUploadBytes)
	}
	if cfg.CookieSecure {
		t.Error("CookieSecure should default to false outside release mode")
	}
	if cfg.AllowedOrigins != nil {
		t.Errorf("AllowedOrigins = %v, want nil (allow-all)", cfg.AllowedOrigins)
	}
}

func TestLoadReleaseModeSecuresCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("GIN_MODE", "release")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.CookieSecure {
		t.Error("CookieSecure should default to true in release mode")
	}
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"https://cafemine.ir", []string{"https://cafemine.ir"}},
		{"https://cafemine.ir, http://localhost:3000 ,", []string{"https://cafemine.ir", "http://localhost:3000"}},
	}

	for _, tt := range tests {
		if got := parseOrigins(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseOrigins(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
