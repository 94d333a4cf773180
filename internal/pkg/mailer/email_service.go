package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendMeetingInvite(toEmail, toName, agenda, dateTime, location string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendMeetingInvite(toEmail, toName, agenda, dateTime, location string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Meeting invitation: %s", agenda))

	if location == "" {
		location = "To be announced"
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>You have been invited to a meeting</h2>
			<p>Hi %s,</p>
			<p><strong>Agenda:</strong> %s</p>
			<p><strong>When:</strong> %s</p>
			<p><strong>Where:</strong> %s</p>
			<p>If you believe this invitation was sent in error, please contact the organizer.</p>
		</div>
	`, toName, agenda, dateTime, location)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}

	return nil
}
