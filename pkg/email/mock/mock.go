package mock_email

import (
	"github.com/vibe-gaming/profile-service/pkg/email"

	"github.com/stretchr/testify/mock"
)

var _ email.Sender = (*Sender)(nil)

// Sender records every message instead of delivering it.
type Sender struct {
	mock.Mock
}

func (m *Sender) Send(inp email.SendEmailInput) error {
	args := m.Called(inp)

	return args.Error(0)
}

// ExpectInvitation registers one expected message to recipients with the given body.
func (m *Sender) ExpectInvitation(subject, body string, recipients ...string) *mock.Call {
	return m.On("Send", email.SendEmailInput{To: recipients, Subject: subject, Body: body})
}
