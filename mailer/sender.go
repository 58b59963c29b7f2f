// Package mailer delivers account-lifecycle emails over SMTP.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
)

// SMTPSender sends HTML email through an SMTP server using implicit TLS
// (port 465 style). It satisfies the auth.Notifier interface.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPSender builds a sender. from defaults to username when empty.
func NewSMTPSender(host, port, username, password, from string) *SMTPSender {
	if from == "" {
		from = username
	}
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// SendWelcome delivers the post-registration greeting.
func (s *SMTPSender) SendWelcome(_ context.Context, toEmail, name string) error {
	body, err := renderWelcome(name)
	if err != nil {
		return err
	}
	return s.send(toEmail, "Welcome to Repairo", body)
}

// SendPasswordReset delivers the reset link.
func (s *SMTPSender) SendPasswordReset(_ context.Context, toEmail, resetURL string) error {
	body, err := renderReset(resetURL)
	if err != nil {
		return err
	}
	return s.send(toEmail, "Reset your Repairo password", body)
}

func (s *SMTPSender) send(to, subject, body string) error {
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", s.from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	addr := s.host + ":" + s.port

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return fmt.Errorf("mailer: dial %s: %w", addr, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("mailer: smtp client: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("mailer: auth: %w", err)
	}

	if err := client.Mail(s.from); err != nil {
		return fmt.Errorf("mailer: mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("mailer: rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("mailer: open data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("mailer: write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mailer: close message: %w", err)
	}

	return nil
}
