package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vibe-gaming/profile-service/internal/queue/task"
	"github.com/vibe-gaming/profile-service/internal/worker"

	"github.com/hibiken/asynq"
)

type sendInvitationProcessor struct {
	workers *worker.Workers
}

func NewSendInvitationProcessor(workers *worker.Workers) *sendInvitationProcessor {
	return &sendInvitationProcessor{
		workers: workers,
	}
}

func (p *sendInvitationProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.SendInvitation
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process send invitation task json unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}

	if err = p.workers.InvitationSender.SendInvitation(ctx, data.Recipients); err != nil {
		return fmt.Errorf("send invitation email failed: %w", err)
	}

	return nil
}
