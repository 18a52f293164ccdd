package repository

import (
	"context"

	"github.com/vibe-gaming/profile-service/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	UserProfiles UserProfiles
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		UserProfiles: newUserProfileRepository(db),
	}
}

// UserProfiles is the record store for user profiles. Every method is atomic.
type UserProfiles interface {
	GetByID(ctx context.Context, id int64) (*domain.UserProfile, error)
	GetByUniqueKey(ctx context.Context, key domain.UniqueKey) (*domain.UserProfile, error)
	Create(ctx context.Context, profile *domain.UserProfile) error
	Replace(ctx context.Context, profile *domain.UserProfile) error
	Delete(ctx context.Context, id int64) (*domain.UserProfile, error)
	Ping(ctx context.Context) error
}
