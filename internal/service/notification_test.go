package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vibe-gaming/profile-service/internal/config"
	"github.com/vibe-gaming/profile-service/internal/queue/task"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type invitationSenderMock struct {
	mock.Mock
}

func (m *invitationSenderMock) SendInvitation(ctx context.Context, recipients []string) error {
	return m.Called(ctx, recipients).Error(0)
}

type enqueuerMock struct {
	mock.Mock
}

func (m *enqueuerMock) EnqueueContext(ctx context.Context, t *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, t)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

var recipients = []string{"a@example.com", "b@example.com"}

func TestNotificationService_Disabled(t *testing.T) {
	sender := new(invitationSenderMock)
	s := newNotificationService(sender, nil, config.EmailConfig{Enabled: false}, zap.NewNop())

	mode, err := s.SendInvitation(context.Background(), recipients)
	require.NoError(t, err)
	assert.Equal(t, DispatchSkipped, mode)
	sender.AssertNotCalled(t, "SendInvitation", mock.Anything, mock.Anything)
}

func TestNotificationService_SendsSynchronously(t *testing.T) {
	sender := new(invitationSenderMock)
	sender.On("SendInvitation", mock.Anything, recipients).Return(nil).Once()
	s := newNotificationService(sender, nil, config.EmailConfig{Enabled: true}, zap.NewNop())

	mode, err := s.SendInvitation(context.Background(), recipients)
	require.NoError(t, err)
	assert.Equal(t, DispatchSent, mode)
	sender.AssertExpectations(t)
}

func TestNotificationService_SendFailure(t *testing.T) {
	sender := new(invitationSenderMock)
	sender.On("SendInvitation", mock.Anything, recipients).Return(errors.New("dial tcp: refused")).Once()
	s := newNotificationService(sender, nil, config.EmailConfig{Enabled: true}, zap.NewNop())

	_, err := s.SendInvitation(context.Background(), recipients)
	assert.ErrorContains(t, err, "refused")
}

func TestNotificationService_Queued(t *testing.T) {
	sender := new(invitationSenderMock)
	enqueuer := new(enqueuerMock)
	enqueuer.On("EnqueueContext", mock.Anything, mock.MatchedBy(func(tsk *asynq.Task) bool {
		return tsk.Type() == task.SendInvitationTaskName
	})).Return(&asynq.TaskInfo{ID: "task-1"}, nil).Once()

	s := newNotificationService(sender, enqueuer, config.EmailConfig{Enabled: true, QueueEnabled: true}, zap.NewNop())

	mode, err := s.SendInvitation(context.Background(), recipients)
	require.NoError(t, err)
	assert.Equal(t, DispatchQueued, mode)
	enqueuer.AssertExpectations(t)
	sender.AssertNotCalled(t, "SendInvitation", mock.Anything, mock.Anything)
}

func TestNotificationService_EnqueueFailure(t *testing.T) {
	enqueuer := new(enqueuerMock)
	enqueuer.On("EnqueueContext", mock.Anything, mock.Anything).Return(nil, errors.New("redis down")).Once()

	s := newNotificationService(new(invitationSenderMock), enqueuer, config.EmailConfig{Enabled: true, QueueEnabled: true}, zap.NewNop())

	_, err := s.SendInvitation(context.Background(), recipients)
	assert.ErrorContains(t, err, "redis down")
}
