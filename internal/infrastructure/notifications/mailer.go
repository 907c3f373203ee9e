package notifications

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Juls010/bluvi-backend/domain"
)

// MailerImpl implements domain.Mailer over SMTP using gomail.
type MailerImpl struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer creates a new SMTP mailer
func NewMailer(host string, port int, username, password, from string) domain.Mailer {
	return &MailerImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendVerificationCode implements domain.Mailer
func (m *MailerImpl) SendVerificationCode(to, code string) error {
	// Without an SMTP host the mailer degrades to logging the message, which
	// keeps local development working without a mail account.
	if m.dialer.Host == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Code: %s\n", to, code)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your Bluvi verification code")
	msg.SetBody("text/html", verificationBody(code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}

func verificationBody(code string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; text-align: center; color: #333;">
<h2>Hi! Thanks for joining Bluvi</h2>
<p>To complete your registration, enter the following verification code:</p>
<h1 style="color: #007bff; letter-spacing: 5px;">%s</h1>
<p>This code expires in 15 minutes.</p>
<hr />
<small>If you did not try to sign up for Bluvi, ignore this email.</small>
</div>`, code)
}
