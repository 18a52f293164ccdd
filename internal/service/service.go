package service

import (
	"context"

	"github.com/vibe-gaming/profile-service/internal/config"
	"github.com/vibe-gaming/profile-service/internal/domain"
	"github.com/vibe-gaming/profile-service/internal/repository"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type Services struct {
	UserProfiles  UserProfiles
	Notifications Notifications
}

type Deps struct {
	Logger      *zap.Logger
	Config      *config.Config
	Repos       *repository.Repositories
	Invitations InvitationSender
	// Enqueuer is only used when invitations go through the queue.
	Enqueuer Enqueuer
}

func NewServices(deps Deps) *Services {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Services{
		UserProfiles:  newUserProfileService(deps.Repos.UserProfiles, logger),
		Notifications: newNotificationService(deps.Invitations, deps.Enqueuer, deps.Config.Email, logger),
	}
}

// UserProfileInput carries every client supplied attribute. Nil means absent.
type UserProfileInput struct {
	CompanyName  *string
	Email        *string
	Password     *string
	FirstName    *string
	LastName     *string
	MobileNumber *string
	DateOfBirth  *string
	Hashtag      *string
}

type UserProfiles interface {
	Create(ctx context.Context, input UserProfileInput) (*domain.UserProfile, error)
	GetByID(ctx context.Context, id int64) (*domain.UserProfile, error)
	Update(ctx context.Context, id int64, input UserProfileInput) (*domain.UserProfile, error)
	Delete(ctx context.Context, id int64) (*domain.UserProfile, error)
}

type Notifications interface {
	SendInvitation(ctx context.Context, recipients []string) (DispatchMode, error)
}

type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
