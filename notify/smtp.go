package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

var _ Mailer = (*SMTPMailer)(nil)

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPConfig describes the SMTP relay, TLS is one of mandatory, opportunistic, none
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	TLS      string
}

// SMTPMailer sends messages through an SMTP relay
type SMTPMailer struct {
	client sender
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(tlsPolicy(cfg.TLS)),
	}

	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail.NewClient: %w", err)
	}

	return &SMTPMailer{client: client}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mm, err := buildMsg(msg)
	if err != nil {
		return fmt.Errorf("build message: %w", err)
	}

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("dial and send: %w", err)
	}

	return nil
}

func buildMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("from %q: %w", msg.From, err)
	}

	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("to %q: %w", msg.To, err)
	}

	m.Subject(msg.Subject)
	m.SetDate()
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	return m, nil
}

func tlsPolicy(s string) mail.TLSPolicy {
	switch s {
	case "mandatory":
		return mail.TLSMandatory
	case "none":
		return mail.NoTLS
	default:
		return mail.TLSOpportunistic
	}
}
