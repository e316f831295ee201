// Package mailer delivers report e-mails over SMTP with go-mail.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/wigac/wigac-backend/internal/config"
	"github.com/wigac/wigac-backend/internal/report"
)

// ErrDisabled is returned by Send when no SMTP host is configured.
var ErrDisabled = errors.New("mail delivery is not configured")

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Mailer sends messages through one SMTP relay.
type Mailer struct {
	log    *slog.Logger
	from   string
	client sender
}

// New creates a Mailer for cfg. A Mailer built from a config without host
// rejects every Send with ErrDisabled.
func New(logger *slog.Logger, cfg config.MailConfig) (*Mailer, error) {
	m := &Mailer{log: logger.With("component", "mailer"), from: cfg.From}
	if !cfg.Enabled() {
		return m, nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
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
		return nil, fmt.Errorf("mailer: %w", err)
	}
	m.client = client
	return m, nil
}

// Check returns ErrDisabled when no relay is configured. It does not dial.
func (m *Mailer) Check(context.Context) error {
	if m.client == nil {
		return ErrDisabled
	}
	return nil
}

// Send delivers msg.
func (m *Mailer) Send(ctx context.Context, msg report.Mail) error {
	if m.client == nil {
		return ErrDisabled
	}
	built, err := m.build(msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, built); err != nil {
		return fmt.Errorf("mailer.Send: %w", err)
	}

	m.log.InfoContext(ctx, "mail sent",
		slog.Any("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("attachments", len(msg.Attachments)))
	return nil
}

func (m *Mailer) build(msg report.Mail) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.From(m.from); err != nil {
		return nil, fmt.Errorf("mailer from: %w", err)
	}
	if err := out.To(msg.To...); err != nil {
		return nil, fmt.Errorf("mailer to: %w", err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Body)
	for _, a := range msg.Attachments {
		opts := []mail.FileOption{}
		if a.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}
		if err := out.AttachReader(a.Name, bytes.NewReader(a.Data), opts...); err != nil {
			return nil, fmt.Errorf("mailer attach %s: %w", a.Name, err)
		}
	}
	return out, nil
}
