package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/vibe-gaming/profile-service/internal/queue/task"
	"github.com/vibe-gaming/profile-service/internal/worker"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type invitationSenderMock struct {
	mock.Mock
}

func (m *invitationSenderMock) SendInvitation(ctx context.Context, recipients []string) error {
	return m.Called(ctx, recipients).Error(0)
}

func TestSendInvitationProcessor_ProcessTask(t *testing.T) {
	sender := new(invitationSenderMock)
	sender.On("SendInvitation", mock.Anything, []string{"a@example.com"}).Return(nil).Once()

	tsk, err := task.NewSendInvitationTask([]string{"a@example.com"})
	require.NoError(t, err)

	p := NewSendInvitationProcessor(&worker.Workers{InvitationSender: sender})
	require.NoError(t, p.ProcessTask(context.Background(), tsk))
	sender.AssertExpectations(t)
}

func TestSendInvitationProcessor_SenderFails(t *testing.T) {
	sender := new(invitationSenderMock)
	sender.On("SendInvitation", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

	tsk, err := task.NewSendInvitationTask([]string{"a@example.com"})
	require.NoError(t, err)

	p := NewSendInvitationProcessor(&worker.Workers{InvitationSender: sender})
	assert.ErrorContains(t, p.ProcessTask(context.Background(), tsk), "smtp down")
}

func TestSendInvitationProcessor_BadPayload(t *testing.T) {
	p := NewSendInvitationProcessor(&worker.Workers{InvitationSender: new(invitationSenderMock)})

	err := p.ProcessTask(context.Background(), asynq.NewTask(task.SendInvitationTaskName, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
