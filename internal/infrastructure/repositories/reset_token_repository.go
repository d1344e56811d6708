package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/binar-final-project-kelompok7/course-in/domain"
)

// ResetTokenRepositoryImpl implements domain.ResetTokenRepository using
// Redis. The token-keyed row is the one a confirm consumes; an
// email-keyed pointer tracks the latest token per email so that issuing
// a new one invalidates the old (last write wins under concurrent
// issues, which is the documented semantics).
type ResetTokenRepositoryImpl struct {
	client      *redis.Client
	tokenPrefix string
	emailPrefix string
}

// NewResetTokenRepository creates a new reset token repository
func NewResetTokenRepository(client *redis.Client) domain.ResetTokenRepository {
	return &ResetTokenRepositoryImpl{
		client:      client,
		tokenPrefix: "pwreset:token:",
		emailPrefix: "pwreset:email:",
	}
}

// Save implements domain.ResetTokenRepository
func (r *ResetTokenRepositoryImpl) Save(ctx context.Context, token *domain.ResetToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal reset token: %w", err)
	}

	// Drop the previous live token for this email, if any.
	if old, err := r.client.Get(ctx, r.emailPrefix+token.Email).Result(); err == nil && old != "" {
		r.client.Del(ctx, r.tokenPrefix+old)
	}

	retention := time.Until(token.ExpiresAt) + expiredRetention
	if err := r.client.Set(ctx, r.tokenPrefix+token.Token, data, retention).Err(); err != nil {
		return err
	}
	return r.client.Set(ctx, r.emailPrefix+token.Email, token.Token, retention).Err()
}

// FindByToken implements domain.ResetTokenRepository
func (r *ResetTokenRepositoryImpl) FindByToken(ctx context.Context, token string) (*domain.ResetToken, error) {
	data, err := r.client.Get(ctx, r.tokenPrefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrResetTokenNotFound
		}
		return nil, err
	}

	var rt domain.ResetToken
	if err := json.Unmarshal([]byte(data), &rt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reset token: %w", err)
	}

	return &rt, nil
}

// Delete implements domain.ResetTokenRepository. Removing the token row
// makes the token single-use; the pointer is cleaned up alongside.
func (r *ResetTokenRepositoryImpl) Delete(ctx context.Context, token *domain.ResetToken) error {
	return r.client.Del(ctx, r.tokenPrefix+token.Token, r.emailPrefix+token.Email).Err()
}
