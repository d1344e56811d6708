package notifications

import (
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/binar-final-project-kelompok7/course-in/domain"
)

// MailServiceImpl implements domain.Notifier over SMTP
type MailServiceImpl struct {
	client *mail.Client
	from   string
}

// NewMailService creates a new SMTP notifier. When no host is
// configured the service logs messages instead of sending them, so the
// full flow stays usable in local development.
func NewMailService(host string, port int, username, password, from string) (domain.Notifier, error) {
	if host == "" {
		return &MailServiceImpl{from: from}, nil
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
	}

	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &MailServiceImpl{client: client, from: from}, nil
}

// SendEmail implements domain.Notifier
func (s *MailServiceImpl) SendEmail(to, subject, body string) error {
	if s.client == nil {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := s.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
