package service

import (
	"context"
	"fmt"

	"github.com/vibe-gaming/profile-service/internal/config"
	"github.com/vibe-gaming/profile-service/internal/queue/task"

	"go.uber.org/zap"
)

type DispatchMode string

const (
	DispatchSent    DispatchMode = "sent"
	DispatchQueued  DispatchMode = "queued"
	DispatchSkipped DispatchMode = "skipped"
)

// InvitationSender renders and delivers the invitation email in one batch.
type InvitationSender interface {
	SendInvitation(ctx context.Context, recipients []string) error
}

type notificationService struct {
	sender   InvitationSender
	enqueuer Enqueuer
	config   config.EmailConfig
	logger   *zap.Logger
}

func newNotificationService(sender InvitationSender, enqueuer Enqueuer, config config.EmailConfig, logger *zap.Logger) *notificationService {
	return &notificationService{
		sender:   sender,
		enqueuer: enqueuer,
		config:   config,
		logger:   logger,
	}
}

// SendInvitation reports the outcome of a single dispatch attempt. Per
// recipient failures are not distinguished.
func (s *notificationService) SendInvitation(ctx context.Context, recipients []string) (DispatchMode, error) {
	if !s.config.Enabled {
		s.logger.Info("email disabled, invitation skipped", zap.Int("recipients", len(recipients)))
		return DispatchSkipped, nil
	}

	if s.config.QueueEnabled && s.enqueuer != nil {
		t, err := task.NewSendInvitationTask(recipients)
		if err != nil {
			return "", fmt.Errorf("create send invitation task failed: %w", err)
		}
		info, err := s.enqueuer.EnqueueContext(ctx, t)
		if err != nil {
			return "", fmt.Errorf("enqueue send invitation task failed: %w", err)
		}
		s.logger.Info("invitation queued", zap.String("task_id", info.ID), zap.Int("recipients", len(recipients)))
		return DispatchQueued, nil
	}

	if err := s.sender.SendInvitation(ctx, recipients); err != nil {
		return "", fmt.Errorf("send invitation failed: %w", err)
	}

	return DispatchSent, nil
}
