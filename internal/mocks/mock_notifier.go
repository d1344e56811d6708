package mocks

import "github.com/binar-final-project-kelompok7/course-in/domain"

// MockNotifier implements domain.Notifier for testing
type MockNotifier struct {
	SendEmailFunc func(to, subject, body string) error

	// Sent records every delivered message for assertions
	Sent []SentEmail
}

// SentEmail is one recorded delivery
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// NewMockNotifier creates a new MockNotifier with default behaviors
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		if err := m.SendEmailFunc(to, subject, body); err != nil {
			return err
		}
	}
	m.Sent = append(m.Sent, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}

// Compile-time interface compliance verification
var _ domain.Notifier = (*MockNotifier)(nil)
