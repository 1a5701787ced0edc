package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/robotomize/ratecheck/internal/logging"
	"github.com/robotomize/ratecheck/label"
	"github.com/robotomize/ratecheck/provider"
)

const Subject = "Exchange PrivatBank and Monobank"

const (
	DefaultFrom = "your_email@example.com"
	DefaultTo   = "recipient@example.com"
)

// ErrDelivery reports that the mail transport could not send a notification
var ErrDelivery = errors.New("delivery error")

// Message is a plain-text email
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Mailer delivers a message through a mail transport
//
//go:generate mockgen -source notifier.go -destination mock_mailer.go -package notify
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type Option func(*Notifier)

// WithFrom sets the sender address
func WithFrom(addr string) Option {
	return func(n *Notifier) {
		n.from = addr
	}
}

// WithTo sets the recipient address
func WithTo(addr string) Option {
	return func(n *Notifier) {
		n.to = addr
	}
}

func New(mailer Mailer, opts ...Option) *Notifier {
	n := &Notifier{
		mailer: mailer,
		from:   DefaultFrom,
		to:     DefaultTo,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Notifier sends one email per currency whose rates differ between the banks
type Notifier struct {
	mailer Mailer
	from   string
	to     string
}

func (n *Notifier) Notify(ctx context.Context, symbol label.Symbol, privat, mono provider.Rate, threshold float64) error {
	msg := Message{
		From:    n.from,
		To:      n.to,
		Subject: Subject,
		Body:    Body(symbol, privat, mono, threshold),
	}

	if err := n.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: send %s notification: %w", ErrDelivery, symbol, err)
	}

	logging.FromContext(ctx).Info("notification sent", "currency", symbol, "to", n.to)

	return nil
}

// Body composes the plain-text notification
func Body(symbol label.Symbol, privat, mono provider.Rate, threshold float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Currency: %s\n", symbol)
	fmt.Fprintf(&b, "The exchange rate difference is higher than %s\n", provider.FormatFloat(threshold))
	fmt.Fprintf(&b, "PrivatBank: buy = %s; sell = %s\n", provider.FormatFloat(privat.Buy), provider.FormatFloat(privat.Sell))
	fmt.Fprintf(&b, "MonoBank: buy = %s; sell = %s", provider.FormatFloat(mono.Buy), provider.FormatFloat(mono.Sell))

	return b.String()
}
