package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vibe-gaming/profile-service/internal/domain"
	"github.com/vibe-gaming/profile-service/internal/repository"

	"go.uber.org/zap"
)

type userProfileService struct {
	repo   repository.UserProfiles
	logger *zap.Logger
}

func newUserProfileService(repo repository.UserProfiles, logger *zap.Logger) *userProfileService {
	return &userProfileService{
		repo:   repo,
		logger: logger,
	}
}

// Create inserts a new profile unless one with the same unique key exists.
// The pre-check only shortens the common path; the uix_user constraint
// decides when two creates race.
func (s *userProfileService) Create(ctx context.Context, input UserProfileInput) (*domain.UserProfile, error) {
	profile := &domain.UserProfile{
		CompanyName:  input.CompanyName,
		Email:        input.Email,
		Password:     input.Password,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		MobileNumber: input.MobileNumber,
		DateOfBirth:  input.DateOfBirth,
		Hashtag:      input.Hashtag,
	}

	existing, err := s.repo.GetByUniqueKey(ctx, profile.UniqueKey())
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, s.storeFault("get user by unique key failed", err)
	}
	if existing != nil {
		s.logger.Warn("user already exists", zap.Int64("existing_id", existing.ID))
		return nil, ErrUserAlreadyExist
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			s.logger.Warn("user create lost unique key race")
			return nil, ErrUserAlreadyExist
		}
		return nil, s.storeFault("create user failed", err)
	}

	return profile, nil
}

func (s *userProfileService) GetByID(ctx context.Context, id int64) (*domain.UserProfile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, s.storeFault("get user by id failed", err)
	}

	return profile, nil
}

// Update replaces every mutable attribute with the input, absent ones included.
// Hashtag is not part of the replaced set and keeps its stored value.
func (s *userProfileService) Update(ctx context.Context, id int64, input UserProfileInput) (*domain.UserProfile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, s.storeFault("get user by id failed", err)
	}

	profile.CompanyName = input.CompanyName
	profile.FirstName = input.FirstName
	profile.LastName = input.LastName
	profile.Email = input.Email
	profile.MobileNumber = input.MobileNumber
	profile.DateOfBirth = input.DateOfBirth
	profile.Password = input.Password

	if err := s.repo.Replace(ctx, profile); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEntry):
			s.logger.Warn("user update collides with another user", zap.Int64("id", id))
			return nil, ErrUserAlreadyExist
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoRowsAffected):
			// removed by a concurrent delete between the read and the replace
			return nil, ErrUserNotFound
		}
		return nil, s.storeFault("replace user failed", err)
	}

	return profile, nil
}

func (s *userProfileService) Delete(ctx context.Context, id int64) (*domain.UserProfile, error) {
	profile, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNoRowsAffected) {
			return nil, ErrUserNotFound
		}
		return nil, s.storeFault("delete user failed", err)
	}

	return profile, nil
}

func (s *userProfileService) storeFault(msg string, err error) error {
	s.logger.Error(msg, zap.Error(err))
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, msg, err)
}
