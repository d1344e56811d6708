package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetProjectRoot(t *testing.T) {
	root := GetProjectRoot()

	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("project root %q has no go.mod: %v", root, err)
	}
}

func TestSetupTestEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "preexisting-value")

	t.Run("overrides for the test duration", func(t *testing.T) {
		SetupTestEnvironment(t)

		if got := os.Getenv("JWT_SECRET"); got != GetTestJWTSecret() {
			t.Errorf("expected test secret, got %q", got)
		}
		if got := os.Getenv("MAIL_HOST"); got != "" {
			t.Errorf("mail host should be blanked for mock delivery, got %q", got)
		}
	})

	// The cleanup registered inside the subtest has run by now.
	if got := os.Getenv("JWT_SECRET"); got != "preexisting-value" {
		t.Errorf("expected the original value restored, got %q", got)
	}
}

func TestLoadTestConfig(t *testing.T) {
	cfg := LoadTestConfig(t)

	if cfg.JWTSecret != GetTestJWTSecret() {
		t.Errorf("unexpected JWT secret %q", cfg.JWTSecret)
	}
	if cfg.OtpTTL != 5*time.Minute {
		t.Errorf("expected 5m OTP TTL from config.yml, got %v", cfg.OtpTTL)
	}
	if cfg.ResetTTL != 5*time.Minute {
		t.Errorf("expected 5m reset TTL from config.yml, got %v", cfg.ResetTTL)
	}
	if cfg.JWTIssuer == "" {
		t.Error("expected an issuer from config.yml")
	}
}
