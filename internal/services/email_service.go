package services

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// EmailService is the outbound notification boundary. The reset flow
// only depends on its success/failure signal.
type EmailService interface {
	SendWelcomeEmail(email, name string) error
	SendPasswordResetEmail(email, resetURL string) error
}

type emailService struct {
	dialer  *gomail.Dialer
	from    string
	timeout time.Duration
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string, timeout time.Duration) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer:  dialer,
		from:    fromEmail,
		timeout: timeout,
	}
}

func (s *emailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome!")

	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Thank you for registering with us. Your account has been successfully created.</p>
	`, name)

	m.SetBody("text/html", body)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

func (s *emailService) SendPasswordResetEmail(email, resetURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Password Reset Request")

	body := fmt.Sprintf(`
		<h1>You have requested a password reset</h1>
		<p>Please go to this link to reset your password:</p>
		<a href="%s">%s</a>
		<p>This link will expire in 1 hour.</p>
	`, resetURL, resetURL)

	m.SetBody("text/html", body)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

// send bounds DialAndSend with the configured timeout; a slow SMTP
// server counts as a delivery failure.
func (s *emailService) send(m *gomail.Message) error {
	if s.timeout <= 0 {
		return s.dialer.DialAndSend(m)
	}
	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()
	select {
	case err := <-done:
		return err
	case <-time.After(s.timeout):
		return fmt.Errorf("smtp send timed out after %s", s.timeout)
	}
}
