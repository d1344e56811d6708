package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/binar-final-project-kelompok7/course-in/domain"
)

// Stale credentials are kept past their logical expiry so verification
// can report "expired" instead of "not found", and so a resend can still
// look up the owning username. Redis evicts them after this window.
const expiredRetention = 24 * time.Hour

// OtpRepositoryImpl implements domain.OtpRepository using Redis.
// Credentials are keyed by email, so a single SET is the atomic
// "replace any prior credential for this email" upsert.
type OtpRepositoryImpl struct {
	client *redis.Client
	prefix string
}

// NewOtpRepository creates a new OTP repository
func NewOtpRepository(client *redis.Client) domain.OtpRepository {
	return &OtpRepositoryImpl{
		client: client,
		prefix: "otp:email:",
	}
}

// Save implements domain.OtpRepository
func (r *OtpRepositoryImpl) Save(ctx context.Context, cred *domain.OtpCredential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("failed to marshal otp credential: %w", err)
	}

	retention := time.Until(cred.ExpiresAt) + expiredRetention
	return r.client.Set(ctx, r.prefix+cred.Email, data, retention).Err()
}

// FindByEmail implements domain.OtpRepository. Expiry is data, not
// control flow: stale credentials are returned as-is and the caller
// decides what expiry means.
func (r *OtpRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.OtpCredential, error) {
	data, err := r.client.Get(ctx, r.prefix+email).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrOtpNotFound
		}
		return nil, err
	}

	var cred domain.OtpCredential
	if err := json.Unmarshal([]byte(data), &cred); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp credential: %w", err)
	}

	return &cred, nil
}

// DeleteByEmail implements domain.OtpRepository
func (r *OtpRepositoryImpl) DeleteByEmail(ctx context.Context, email string) error {
	return r.client.Del(ctx, r.prefix+email).Err()
}
