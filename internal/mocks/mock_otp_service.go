package mocks

import (
	"context"

	"github.com/binar-final-project-kelompok7/course-in/domain"
)

// MockOtpService implements domain.OtpService for testing
type MockOtpService struct {
	IssueFunc  func(ctx context.Context, email, username string) (*domain.OtpCredential, error)
	VerifyFunc func(ctx context.Context, email, code string) (*domain.OtpCredential, error)
	ResendFunc func(ctx context.Context, email string) (*domain.OtpCredential, error)
}

// NewMockOtpService creates a new MockOtpService with default behaviors
func NewMockOtpService() *MockOtpService {
	return &MockOtpService{}
}

func (m *MockOtpService) Issue(ctx context.Context, email, username string) (*domain.OtpCredential, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, email, username)
	}
	return &domain.OtpCredential{Code: "123456", Email: email, Username: username}, nil
}

func (m *MockOtpService) Verify(ctx context.Context, email, code string) (*domain.OtpCredential, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code)
	}
	return nil, domain.ErrOtpNotFound
}

func (m *MockOtpService) Resend(ctx context.Context, email string) (*domain.OtpCredential, error) {
	if m.ResendFunc != nil {
		return m.ResendFunc(ctx, email)
	}
	return nil, domain.ErrOtpNotFound
}

// Compile-time interface compliance verification
var _ domain.OtpService = (*MockOtpService)(nil)
