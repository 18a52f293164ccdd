package worker

import (
	"context"
	"fmt"

	"github.com/vibe-gaming/profile-service/internal/config"
	emailProvider "github.com/vibe-gaming/profile-service/pkg/email"
)

const invitationSubject = "Invitation"

type invitationSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newInvitationSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *invitationSender {
	return &invitationSender{
		sender: sender,
		config: config,
	}
}

type invitationEmailInput struct {
	DocsURL string
}

// SendInvitation renders the invitation template once and sends it as a
// single message to all recipients.
func (s *invitationSender) SendInvitation(ctx context.Context, recipients []string) error {
	templateInput := invitationEmailInput{DocsURL: s.config.DocsURL}
	sendInput := emailProvider.SendEmailInput{Subject: invitationSubject, To: recipients}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Dir, s.config.Templates.Invitation, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
