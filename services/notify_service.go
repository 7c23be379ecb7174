package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// NotifyService sends operational mails after scheduled runs. It stays
// inert unless an SMTP host and at least one receiver are configured.
type NotifyService struct {
	host     string
	port     int
	user     string
	password string
	to       []string
}

func NewNotifyService(host string, port int, user, password string, to []string) *NotifyService {
	return &NotifyService{host: host, port: port, user: user, password: password, to: to}
}

func (s *NotifyService) Enabled() bool {
	return s.host != "" && len(s.to) > 0
}

func (s *NotifyService) Send(subject, body string) error {
	if !s.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.user)
	msg.SetHeader("To", s.to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(s.host, s.port, s.user, s.password)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("❌ Failed to send notification mail:", err)
		return err
	}
	return nil
}
