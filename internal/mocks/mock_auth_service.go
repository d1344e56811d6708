package mocks

import (
	"context"

	"github.com/binar-final-project-kelompok7/course-in/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc             func(ctx context.Context, username, email, password, name string) (*domain.OtpCredential, error)
	VerifyRegistrationFunc   func(ctx context.Context, email, code string) (*domain.Account, string, error)
	ResendRegistrationFunc   func(ctx context.Context, email string) (*domain.OtpCredential, error)
	LoginFunc                func(ctx context.Context, identifier, password string) (*domain.Account, string, error)
	RequestPasswordResetFunc func(ctx context.Context, email string) (*domain.ResetToken, error)
	ConfirmPasswordResetFunc func(ctx context.Context, token, newPassword, confirmPassword string) error
	GetAccountFunc           func(ctx context.Context, identifier string) (*domain.Account, error)
	UpdatePasswordFunc       func(ctx context.Context, username, oldPassword, newPassword, confirmPassword string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password, name string) (*domain.OtpCredential, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password, name)
	}
	return &domain.OtpCredential{Email: email, Username: username}, nil
}

func (m *MockAuthService) VerifyRegistration(ctx context.Context, email, code string) (*domain.Account, string, error) {
	if m.VerifyRegistrationFunc != nil {
		return m.VerifyRegistrationFunc(ctx, email, code)
	}
	return nil, "", domain.ErrOtpNotFound
}

func (m *MockAuthService) ResendRegistration(ctx context.Context, email string) (*domain.OtpCredential, error) {
	if m.ResendRegistrationFunc != nil {
		return m.ResendRegistrationFunc(ctx, email)
	}
	return nil, domain.ErrOtpNotFound
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*domain.Account, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, identifier, password)
	}
	return nil, "", domain.ErrInvalidCredentials
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) (*domain.ResetToken, error) {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword, confirmPassword string) error {
	if m.ConfirmPasswordResetFunc != nil {
		return m.ConfirmPasswordResetFunc(ctx, token, newPassword, confirmPassword)
	}
	return domain.ErrResetTokenNotFound
}

func (m *MockAuthService) GetAccount(ctx context.Context, identifier string) (*domain.Account, error) {
	if m.GetAccountFunc != nil {
		return m.GetAccountFunc(ctx, identifier)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAuthService) UpdatePassword(ctx context.Context, username, oldPassword, newPassword, confirmPassword string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, username, oldPassword, newPassword, confirmPassword)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
