package mocks

import "github.com/binar-final-project-kelompok7/course-in/domain"

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	MintFunc     func(account *domain.Account) (string, error)
	ValidateFunc func(tokenString string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Mint(account *domain.Account) (string, error) {
	if m.MintFunc != nil {
		return m.MintFunc(account)
	}
	return "token-" + account.Username, nil
}

func (m *MockTokenService) Validate(tokenString string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(tokenString)
	}
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
