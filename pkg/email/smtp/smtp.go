package smtp

import (
	"github.com/vibe-gaming/profile-service/pkg/email"

	"github.com/go-gomail/gomail"
	"github.com/pkg/errors"
)

type SMTPSender struct {
	from     string
	username string
	pass     string
	host     string
	port     int
}

func NewSMTPSender(from, username, pass, host string, port int) (*SMTPSender, error) {
	if !email.IsEmailValid(from) {
		return nil, errors.New("invalid from email")
	}
	if username == "" {
		username = from
	}

	return &SMTPSender{from: from, username: username, pass: pass, host: host, port: port}, nil
}

// Send delivers one message addressed to every recipient of input.
func (s *SMTPSender) Send(input email.SendEmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	msg := s.message(input)

	dialer := gomail.NewDialer(s.host, s.port, s.username, s.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to sent email via smtp")
	}

	return nil
}

func (s *SMTPSender) message(input email.SendEmailInput) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", input.To...)
	msg.SetHeader("Subject", input.Subject)
	msg.SetBody("text/html", input.Body)

	return msg
}
