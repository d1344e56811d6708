package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/binar-final-project-kelompok7/course-in/domain"
)

// DefaultRole is assigned to every newly registered account.
const DefaultRole = "user"

// AuthServiceImpl implements domain.AuthService. It orchestrates the
// account store, the OTP and reset registries, the secret hasher and
// the session issuer; the PENDING to ACTIVE transition happens only
// through VerifyRegistration.
type AuthServiceImpl struct {
	accountRepo domain.AccountRepository
	otpSvc      domain.OtpService
	resetSvc    domain.ResetService
	hasher      domain.SecretHasher
	tokenSvc    domain.TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(
	accountRepo domain.AccountRepository,
	otpSvc domain.OtpService,
	resetSvc domain.ResetService,
	hasher domain.SecretHasher,
	tokenSvc domain.TokenService,
) domain.AuthService {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		otpSvc:      otpSvc,
		resetSvc:    resetSvc,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, username, email, password, name string) (*domain.OtpCredential, error) {
	exists, err := s.accountRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if exists {
		return nil, domain.ErrAccountExists
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Name:         name,
		Enabled:      false,
		Roles:        []string{DefaultRole},
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	log.Printf("ACCOUNT_REGISTERED: username=%s email=%s", username, email)

	return s.otpSvc.Issue(ctx, email, username)
}

// VerifyRegistration implements domain.AuthService
func (s *AuthServiceImpl) VerifyRegistration(ctx context.Context, email, code string) (*domain.Account, string, error) {
	if _, err := s.otpSvc.Verify(ctx, email, code); err != nil {
		return nil, "", err
	}

	if err := s.accountRepo.Enable(ctx, email); err != nil {
		return nil, "", fmt.Errorf("failed to enable account: %w", err)
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokenSvc.Mint(account)
	if err != nil {
		return nil, "", fmt.Errorf("failed to mint session token: %w", err)
	}

	log.Printf("ACCOUNT_VERIFIED: username=%s email=%s", account.Username, email)

	return account, token, nil
}

// ResendRegistration implements domain.AuthService. A pending account
// whose credential is gone (delivery rollback, retention lapse) gets a
// fresh one, so a failed send never strands the registration. Unknown
// emails and already-active accounts still report not found.
func (s *AuthServiceImpl) ResendRegistration(ctx context.Context, email string) (*domain.OtpCredential, error) {
	cred, err := s.otpSvc.Resend(ctx, email)
	if err == nil || !errors.Is(err, domain.ErrOtpNotFound) {
		return cred, err
	}

	account, findErr := s.accountRepo.FindByEmail(ctx, email)
	if findErr != nil || account.Enabled {
		return nil, err
	}

	return s.otpSvc.Issue(ctx, email, account.Username)
}

// Login implements domain.AuthService. A correct password on a pending
// account is still rejected: only verified accounts may hold sessions.
func (s *AuthServiceImpl) Login(ctx context.Context, identifier, password string) (*domain.Account, string, error) {
	account, err := s.accountRepo.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		return nil, "", err
	}

	if !s.hasher.Verify(account.PasswordHash, password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	if !account.Enabled {
		return nil, "", domain.ErrAccountDisabled
	}

	token, err := s.tokenSvc.Mint(account)
	if err != nil {
		return nil, "", fmt.Errorf("failed to mint session token: %w", err)
	}

	return account, token, nil
}

// RequestPasswordReset implements domain.AuthService
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) (*domain.ResetToken, error) {
	return s.resetSvc.Issue(ctx, email)
}

// ConfirmPasswordReset implements domain.AuthService
func (s *AuthServiceImpl) ConfirmPasswordReset(ctx context.Context, token, newPassword, confirmPassword string) error {
	return s.resetSvc.Confirm(ctx, token, newPassword, confirmPassword)
}

// GetAccount implements domain.AuthService
func (s *AuthServiceImpl) GetAccount(ctx context.Context, identifier string) (*domain.Account, error) {
	return s.accountRepo.FindByUsernameOrEmail(ctx, identifier)
}

// UpdatePassword implements domain.AuthService
func (s *AuthServiceImpl) UpdatePassword(ctx context.Context, username, oldPassword, newPassword, confirmPassword string) error {
	account, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(account.PasswordHash, oldPassword) {
		return domain.ErrInvalidCredentials
	}

	if newPassword != confirmPassword {
		return domain.ErrPasswordMismatch
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	return s.accountRepo.UpdatePassword(ctx, account.Email, hashed)
}
