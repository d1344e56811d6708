package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/binar-final-project-kelompok7/course-in/domain"
)

// ResetServiceImpl implements domain.ResetService
type ResetServiceImpl struct {
	accountRepo domain.AccountRepository
	resetRepo   domain.ResetTokenRepository
	hasher      domain.SecretHasher
	notifier    domain.Notifier
	resetURL    string
	ttl         time.Duration
}

// NewResetService creates a new password reset service
func NewResetService(
	accountRepo domain.AccountRepository,
	resetRepo domain.ResetTokenRepository,
	hasher domain.SecretHasher,
	notifier domain.Notifier,
	resetURL string,
	ttl time.Duration,
) domain.ResetService {
	return &ResetServiceImpl{
		accountRepo: accountRepo,
		resetRepo:   resetRepo,
		hasher:      hasher,
		notifier:    notifier,
		resetURL:    resetURL,
		ttl:         ttl,
	}
}

// Issue implements domain.ResetService. Only enabled accounts may
// request a reset. Delivery failure rolls the stored token back.
func (s *ResetServiceImpl) Issue(ctx context.Context, email string) (*domain.ResetToken, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !account.Enabled {
		return nil, domain.ErrAccountDisabled
	}

	token := &domain.ResetToken{
		Token:     uuid.NewString(),
		Email:     account.Email,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := s.resetRepo.Save(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store reset token: %w", err)
	}

	subject := "CourseIn - Forgot Password"
	body := fmt.Sprintf(
		"Click the link below to confirm your password reset.\nIf you did not request this, please ignore this email.\n\n%s%s\n\nCourseIn Team",
		s.resetURL, token.Token,
	)
	if err := s.notifier.SendEmail(account.Email, subject, body); err != nil {
		s.resetRepo.Delete(ctx, token)
		return nil, fmt.Errorf("failed to send reset email: %w", err)
	}

	return token, nil
}

// Confirm implements domain.ResetService. The token is single-use: a
// second confirm with the same token fails with not found.
func (s *ResetServiceImpl) Confirm(ctx context.Context, token, newPassword, confirmPassword string) error {
	rt, err := s.resetRepo.FindByToken(ctx, token)
	if err != nil {
		return err
	}

	if rt.Expired(time.Now()) {
		return domain.ErrResetTokenExpired
	}

	account, err := s.accountRepo.FindByEmail(ctx, rt.Email)
	if err != nil {
		return err
	}

	if !account.Enabled {
		return domain.ErrAccountDisabled
	}

	if newPassword != confirmPassword {
		return domain.ErrPasswordMismatch
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.accountRepo.UpdatePassword(ctx, rt.Email, hashed); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return s.resetRepo.Delete(ctx, rt)
}
