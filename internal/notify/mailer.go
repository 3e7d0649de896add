package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Mailer delivers a composed notification to the owner's contact
// address. Delivery is best effort; the transport decides retries.
type Mailer interface {
	Send(ctx context.Context, to, body string) error
}

// SMTPMailer submits plain-text mail through a fixed SMTP endpoint
// with a fixed sender and subject. The client is created once per
// stage lifetime.
type SMTPMailer struct {
	client  *mail.Client
	from    string
	subject string
}

func NewSMTPMailer(host string, port int, username, password, from, subject string) (*SMTPMailer, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPMailer{
		client:  client,
		from:    from,
		subject: subject,
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, to, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(m.subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
