package messaging

import (
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

var ErrMissingSMTPConfig = errors.New("missing SMTP_HOST, SMTP_PORT or SMTP_FROM")

// SMTPMailer sends the plain text email redundancy channel.
type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPMailer(host, port, user, pass, from string) (*SMTPMailer, error) {
	if host == "" || port == "" || from == "" {
		return nil, ErrMissingSMTPConfig
	}
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, from: from}, nil
}

func (m *SMTPMailer) Send(address, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + address,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.from, []string{address}, []byte(msg)); err != nil {
		return err
	}
	log.Printf("[messaging][email] message sent subject=%q", subject)
	return nil
}
