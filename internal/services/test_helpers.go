package services

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/binar-final-project-kelompok7/course-in/domain"
	"github.com/binar-final-project-kelompok7/course-in/internal/infrastructure/repositories"
)

// newTestRedis starts an in-process redis and returns a client bound to it
func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client
}

// newTestOtpRepo returns a redis-backed OTP repository over miniredis
func newTestOtpRepo(t *testing.T) domain.OtpRepository {
	t.Helper()
	return repositories.NewOtpRepository(newTestRedis(t))
}

// newTestResetRepo returns a redis-backed reset token repository over miniredis
func newTestResetRepo(t *testing.T) domain.ResetTokenRepository {
	t.Helper()
	return repositories.NewResetTokenRepository(newTestRedis(t))
}
