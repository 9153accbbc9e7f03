package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"sync"

	"greenview-homes/app/config"
)

// EmailMessage is one outbound notification.
type EmailMessage struct {
	To      string
	Subject string
	Body    string
}

// Mailer is any service that can send notification emails.
type Mailer interface {
	Send(msg EmailMessage) error
}

// SMTPMailer sends mail through the configured SMTP relay.
type SMTPMailer struct {
	conf config.SMTPConfig
}

func NewSMTPMailer(conf config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{conf: conf}
}

func (m *SMTPMailer) Send(msg EmailMessage) error {
	addr := fmt.Sprintf("%s:%d", m.conf.Host, m.conf.Port)
	auth := smtp.PlainAuth("", m.conf.Username, m.conf.Password, m.conf.Host)

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", m.conf.From)
	fmt.Fprintf(&body, "To: %s\r\n", msg.To)
	fmt.Fprintf(&body, "Subject: %s\r\n", msg.Subject)
	fmt.Fprint(&body, "MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	fmt.Fprint(&body, msg.Body)

	if err := smtp.SendMail(addr, auth, m.conf.From, []string{msg.To}, []byte(body.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %v", msg.To, err)
	}
	return nil
}

// ConsoleMailer logs messages instead of sending them and records them for
// inspection. Used in development and in tests.
type ConsoleMailer struct {
	mu            sync.Mutex
	Sent          []EmailMessage
	DisableOutput bool
}

func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

func (m *ConsoleMailer) Send(msg EmailMessage) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, msg)
	m.mu.Unlock()
	if !m.DisableOutput {
		log.Printf("MAIL to=%s subject=%q\n%s", msg.To, msg.Subject, msg.Body)
	}
	return nil
}

// SentCount returns how many messages have been recorded.
func (m *ConsoleMailer) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}
