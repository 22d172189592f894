package email

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"gopkg.in/gomail.v2"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
)

// Provider sends transactional mail.
type Provider interface {
	SendVerificationCode(to, code string) error
	SendRecoveryCode(to, code string) error
}

// SMTPProvider sends mail through an SMTP relay.
type SMTPProvider struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPProvider builds a provider from the email config section.
func NewSMTPProvider(cfg config.EmailConfig) *SMTPProvider {
	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}
	return &SMTPProvider{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   from,
	}
}

func (p *SMTPProvider) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

func (p *SMTPProvider) SendVerificationCode(to, code string) error {
	body := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)
	return p.send(to, "Confirm your registration", body)
}

func (p *SMTPProvider) SendRecoveryCode(to, code string) error {
	body := fmt.Sprintf("Your account recovery code is %s. It expires in 10 minutes.", code)
	return p.send(to, "Account recovery", body)
}

// LogProvider writes codes to the application log instead of sending mail.
// Used in development when no SMTP relay is configured.
type LogProvider struct{}

func (LogProvider) SendVerificationCode(to, code string) error {
	logger.Info("verification code issued", "to", to, "code", code)
	return nil
}

func (LogProvider) SendRecoveryCode(to, code string) error {
	logger.Info("recovery code issued", "to", to, "code", code)
	return nil
}

// NewProvider returns an SMTP provider when a host is configured,
// otherwise a log-only provider.
func NewProvider(cfg config.EmailConfig) Provider {
	if cfg.SMTPHost == "" {
		return LogProvider{}
	}
	return NewSMTPProvider(cfg)
}

// GenerateCode returns a random 6-digit numeric code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
