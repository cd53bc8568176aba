package mailer

import (
	"context"

	gomail "github.com/wneessen/go-mail"
)

// Mailer — контракт почтового транспорта для формы контактов.
type Mailer interface {
	// Send отправляет plain-text письмо фиксированному получателю.
	Send(ctx context.Context, subject, body string) error
}

// SMTPConfig — параметры SMTP-релея.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string

	// From и To фиксированы конфигурацией, не запросом.
	From string
	To   string
}

// SMTPMailer отправляет письма через SMTP с TLS и LOGIN-аутентификацией.
type SMTPMailer struct {
	cfg SMTPConfig
}

var _ Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return err
	}
	if err := msg.To(m.cfg.To); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthLogin),
		gomail.WithUsername(m.cfg.User),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return err
	}

	return client.DialAndSendWithContext(ctx, msg)
}
