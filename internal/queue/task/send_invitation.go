package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	SendInvitationTaskName  = "sendInvitationTask"
	SendInvitationQueueName = "sendInvitationQueue"
)

type SendInvitation struct {
	Recipients []string `json:"recipients"`
}

// NewSendInvitationTask builds a single-attempt task, failed deliveries are not retried.
func NewSendInvitationTask(recipients []string) (*asynq.Task, error) {
	payload, err := json.Marshal(SendInvitation{Recipients: recipients})
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendInvitationTaskName,
		payload,
		asynq.MaxRetry(0),
		asynq.Queue(SendInvitationQueueName),
	), nil
}
