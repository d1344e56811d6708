package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"github.com/binar-final-project-kelompok7/course-in/internal/config"
)

// GetTestJWTSecret returns a deterministic JWT secret for testing
func GetTestJWTSecret() string {
	return "test-jwt-secret-for-e2e-validation"
}

// SetupTestEnvironment sets environment variables for the test duration.
// A .env.test file at the project root, when present, takes precedence.
func SetupTestEnvironment(t *testing.T) {
	t.Helper()

	if err := godotenv.Load(filepath.Join(GetProjectRoot(), ".env.test")); err != nil {
		t.Logf("no .env.test file loaded: %v", err)
	}

	testEnvVars := map[string]string{
		"GIN_MODE":    "test",
		"JWT_SECRET":  GetTestJWTSecret(),
		"MAIL_HOST":   "", // empty host keeps the mail client in mock mode
		"CONFIG_PATH": filepath.Join(GetProjectRoot(), "config", "config.yml"),
	}

	for key, value := range testEnvVars {
		key := key
		originalValue, had := os.LookupEnv(key)
		os.Setenv(key, value)

		t.Cleanup(func() {
			if !had {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, originalValue)
			}
		})
	}
}

// LoadTestConfig loads the application configuration for E2E tests
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	SetupTestEnvironment(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load test configuration: %v", err)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == "change" {
		t.Fatal("JWT_SECRET must be set to a secure value for tests")
	}

	return cfg
}

// GetProjectRoot returns the project root directory for config files
func GetProjectRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}

	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return wd
		}

		parent := filepath.Dir(wd)
		if parent == wd {
			break
		}
		wd = parent
	}

	return "."
}
