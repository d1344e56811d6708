package mocks

import "github.com/binar-final-project-kelompok7/course-in/domain"

// MockSecretHasher implements domain.SecretHasher for testing. The
// default behavior is a reversible fake: Hash prefixes the secret and
// Verify checks the prefix, which keeps tests fast and deterministic.
type MockSecretHasher struct {
	HashFunc   func(secret string) (string, error)
	VerifyFunc func(hashedSecret, secret string) bool
}

// NewMockSecretHasher creates a new MockSecretHasher with default behaviors
func NewMockSecretHasher() *MockSecretHasher {
	return &MockSecretHasher{}
}

func (m *MockSecretHasher) Hash(secret string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(secret)
	}
	return "hashed:" + secret, nil
}

func (m *MockSecretHasher) Verify(hashedSecret, secret string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedSecret, secret)
	}
	return hashedSecret == "hashed:"+secret
}

// Compile-time interface compliance verification
var _ domain.SecretHasher = (*MockSecretHasher)(nil)
