package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendAssistanceRequest(requestId, name, phone, topic, message string) error
}

type emailService struct {
	dialer         *gomail.Dialer
	senderEmail    string
	volunteerInbox string
}

func NewEmailService(host string, port int, username, password, senderEmail, volunteerInbox string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:         d,
		senderEmail:    senderEmail,
		volunteerInbox: volunteerInbox,
	}
}

func (s *emailService) SendAssistanceRequest(requestId, name, phone, topic, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.volunteerInbox)
	m.SetHeader("Subject", fmt.Sprintf("Assistance request: %s", topic))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New assistance request</h2>
			<p>Request ID: %s</p>
			<p><strong>%s</strong> asked for a call back about <strong>%s</strong>.</p>
			<p>Phone: %s</p>
			<p>%s</p>
		</div>
	`, requestId, name, topic, phone, message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to forward assistance request %s: %v\n", requestId, err)
		return err
	}

	fmt.Printf("[MAILER] Assistance request %s forwarded to %s\n", requestId, s.volunteerInbox)
	return nil
}
