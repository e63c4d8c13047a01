package auth

import (
	"fmt"
	"log"
	"net/smtp"
)

// Sender delivers a generated OTP to the account owner.
type Sender interface {
	SendOTP(to, code string) error
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPMailer sends the OTP over plain-auth SMTP.
type SMTPMailer struct {
	config SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{config: cfg}
}

func (m *SMTPMailer) SendOTP(to, code string) error {
	headers := map[string]string{
		"From":         m.config.From,
		"To":           to,
		"Subject":      "Your admin sign-in code",
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}

	var msg string
	for k, v := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	msg += "\r\n" + buildOTPBody(code)

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}
	return nil
}

func buildOTPBody(code string) string {
	return fmt.Sprintf(`<html><body>
<p>Use this code to finish signing in to the admin dashboard:</p>
<p style="font-size:2em;font-weight:bold">%s</p>
<p>The code expires in 5 minutes. If you did not request it, ignore this email.</p>
</body></html>`, code)
}

// LogMailer stands in when SMTP is not configured: the code is written to the
// server log, mirroring the original demo that displayed it to the operator.
type LogMailer struct{}

func (LogMailer) SendOTP(to, code string) error {
	log.Printf("OTP for %s: %s (expires in 5 minutes)", to, code)
	return nil
}
