package smtp

import (
	"bytes"
	"testing"

	"github.com/vibe-gaming/profile-service/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMTPSender(t *testing.T) {
	_, err := NewSMTPSender("not-an-email", "", "pw", "localhost", 587)
	assert.Error(t, err)

	s, err := NewSMTPSender("noreply@example.com", "", "pw", "localhost", 587)
	require.NoError(t, err)
	assert.Equal(t, "noreply@example.com", s.username)
}

func TestSMTPSender_Message(t *testing.T) {
	s, err := NewSMTPSender("noreply@example.com", "mailer", "pw", "localhost", 587)
	require.NoError(t, err)

	msg := s.message(email.SendEmailInput{
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "Invitation",
		Body:    "<p>hello</p>",
	})

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"noreply@example.com"}, msg.GetHeader("From"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Subject: Invitation")
	assert.Contains(t, buf.String(), "text/html")
}

func TestSMTPSender_Send_InvalidInput(t *testing.T) {
	s, err := NewSMTPSender("noreply@example.com", "", "pw", "localhost", 587)
	require.NoError(t, err)

	err = s.Send(email.SendEmailInput{Subject: "Invitation", Body: "x"})
	assert.Error(t, err)
}
