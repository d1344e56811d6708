package mocks

import (
	"context"

	"github.com/binar-final-project-kelompok7/course-in/domain"
)

// MockResetService implements domain.ResetService for testing
type MockResetService struct {
	IssueFunc   func(ctx context.Context, email string) (*domain.ResetToken, error)
	ConfirmFunc func(ctx context.Context, token, newPassword, confirmPassword string) error
}

// NewMockResetService creates a new MockResetService with default behaviors
func NewMockResetService() *MockResetService {
	return &MockResetService{}
}

func (m *MockResetService) Issue(ctx context.Context, email string) (*domain.ResetToken, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, email)
	}
	return &domain.ResetToken{Token: "test-token", Email: email}, nil
}

func (m *MockResetService) Confirm(ctx context.Context, token, newPassword, confirmPassword string) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, token, newPassword, confirmPassword)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.ResetService = (*MockResetService)(nil)
