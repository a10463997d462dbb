// AngelaMos | 2026
// mailer.go

package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/b2bmarket/backend/internal/config"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer returns the SMTP mailer when delivery is configured and a
// log-only mailer otherwise, so callers never need to special-case a
// missing email setup.
func NewMailer(cfg config.EmailConfig, logger *slog.Logger) Mailer {
	if cfg.Enabled && cfg.SMTPHost != "" {
		return &SMTPMailer{cfg: cfg}
	}
	return &LogMailer{logger: logger}
}

type SMTPMailer struct {
	cfg config.EmailConfig
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)
	}

	body := m.buildMessage(msg)

	if err := smtp.SendMail(
		addr,
		auth,
		m.cfg.From,
		[]string{msg.To},
		body,
	); err != nil {
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	return nil
}

func (m *SMTPMailer) buildMessage(msg Message) []byte {
	var b strings.Builder

	from := m.cfg.From
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%q <%s>", m.cfg.FromName, m.cfg.From)
	}

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")

	return []byte(b.String())
}

// LogMailer records messages instead of delivering them. Used in
// development and tests.
type LogMailer struct {
	logger *slog.Logger
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info("email delivery disabled, message not sent",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}

// PasswordResetMessage builds the reset email pointing at the frontend
// reset page. The link expires with the token, one hour after issuance.
func PasswordResetMessage(to, baseURL, token string) Message {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", baseURL, token)

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Reset Your Password</h2>
  <p>You requested to reset your password for your B2B Market account.</p>
  <p><a href="%s">Reset Password</a></p>
  <p>Or copy and paste this link into your browser:</p>
  <p>%s</p>
  <p>This link will expire in 1 hour.</p>
  <p>If you didn't request this password reset, please ignore this email.</p>
</div>`, resetURL, resetURL)

	return Message{
		To:      to,
		Subject: "Reset Your Password - B2B Market",
		HTML:    html,
	}
}
