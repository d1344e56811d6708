package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/binar-final-project-kelompok7/course-in/domain"
)

// OTPServiceImpl implements domain.OtpService
type OTPServiceImpl struct {
	otpRepo  domain.OtpRepository
	notifier domain.Notifier
	ttl      time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(otpRepo domain.OtpRepository, notifier domain.Notifier, ttl time.Duration) domain.OtpService {
	return &OTPServiceImpl{
		otpRepo:  otpRepo,
		notifier: notifier,
		ttl:      ttl,
	}
}

// Issue implements domain.OtpService. Issuance and delivery behave as
// one unit: when the email cannot be sent the just-stored credential is
// removed again, so no undeliverable code is left behind.
func (s *OTPServiceImpl) Issue(ctx context.Context, email, username string) (*domain.OtpCredential, error) {
	code, err := generateOtpCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	cred := &domain.OtpCredential{
		Code:      code,
		Email:     email,
		Username:  username,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := s.otpRepo.Save(ctx, cred); err != nil {
		return nil, fmt.Errorf("failed to store OTP credential: %w", err)
	}

	subject := "CourseIn - Register OTP"
	body := fmt.Sprintf(
		"Thank you for registering with CourseIn.\n\nYour verification code is: %s\nIt is valid for %d minutes.\n\nCourseIn Team",
		code, int(s.ttl.Minutes()),
	)
	if err := s.notifier.SendEmail(email, subject, body); err != nil {
		s.otpRepo.DeleteByEmail(ctx, email)
		return nil, fmt.Errorf("failed to send OTP email: %w", err)
	}

	return cred, nil
}

// Verify implements domain.OtpService. A successful verification
// consumes the credential; repeating the call fails with not found.
func (s *OTPServiceImpl) Verify(ctx context.Context, email, code string) (*domain.OtpCredential, error) {
	cred, err := s.otpRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if cred.Code != code {
		return nil, domain.ErrOtpNotFound
	}

	if cred.Expired(time.Now()) {
		return nil, domain.ErrOtpExpired
	}

	if err := s.otpRepo.DeleteByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to consume OTP credential: %w", err)
	}

	return cred, nil
}

// Resend implements domain.OtpService. The old code stops verifying the
// moment the new credential is stored.
func (s *OTPServiceImpl) Resend(ctx context.Context, email string) (*domain.OtpCredential, error) {
	old, err := s.otpRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.otpRepo.DeleteByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to delete previous OTP credential: %w", err)
	}

	return s.Issue(ctx, email, old.Username)
}

// generateOtpCode returns a uniformly random 6-digit code in
// [100000, 999999], so there is never a leading zero.
func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
