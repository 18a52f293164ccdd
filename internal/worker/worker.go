package worker

import (
	"context"

	"github.com/vibe-gaming/profile-service/internal/config"
	emailProvider "github.com/vibe-gaming/profile-service/pkg/email"
)

type Workers struct {
	InvitationSender InvitationSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type InvitationSender interface {
	SendInvitation(ctx context.Context, recipients []string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		InvitationSender: newInvitationSender(deps.EmailProvider, deps.Config.Email),
	}
}
