package service

import (
	"context"
	"strings"

	"github.com/HarminderDhillon/twitter-clone/internal/dto"
	"github.com/HarminderDhillon/twitter-clone/internal/models"
	"github.com/HarminderDhillon/twitter-clone/internal/repository"

	"github.com/google/uuid"
)

// FollowService implements the social graph operations: creating and
// removing directed follow edges and reading the graph around a user.
type FollowService struct {
	users   repository.UserRepository
	follows repository.FollowRepository
}

// NewFollowService creates a new follow service.
func NewFollowService(users repository.UserRepository, follows repository.FollowRepository) *FollowService {
	return &FollowService{users: users, follows: follows}
}

// resolve maps a username to its user id, case-insensitively.
func (s *FollowService) resolve(ctx context.Context, username string) (uuid.UUID, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, models.NewNotFoundError("User", username)
	}
	return user.ID, nil
}

// Follow creates the edge follower -> target. Following yourself is
// rejected; following someone you already follow is a no-op.
func (s *FollowService) Follow(ctx context.Context, follower, target string) error {
	if strings.EqualFold(follower, target) {
		return models.NewValidationError("You cannot follow yourself")
	}
	followerID, err := s.resolve(ctx, follower)
	if err != nil {
		return err
	}
	targetID, err := s.resolve(ctx, target)
	if err != nil {
		return err
	}
	return s.follows.Follow(ctx, followerID, targetID)
}

// Unfollow removes the edge follower -> target. Removing an edge that
// does not exist is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, follower, target string) error {
	followerID, err := s.resolve(ctx, follower)
	if err != nil {
		return err
	}
	targetID, err := s.resolve(ctx, target)
	if err != nil {
		return err
	}
	return s.follows.Unfollow(ctx, followerID, targetID)
}

// IsFollowing reports whether follower currently follows target. The
// relation is directional; the reverse edge is not consulted.
func (s *FollowService) IsFollowing(ctx context.Context, follower, target string) (bool, error) {
	followerID, err := s.resolve(ctx, follower)
	if err != nil {
		return false, err
	}
	targetID, err := s.resolve(ctx, target)
	if err != nil {
		return false, err
	}
	return s.follows.IsFollowing(ctx, followerID, targetID)
}

// GetFollowers lists the users following username.
func (s *FollowService) GetFollowers(ctx context.Context, username string, page, size int) (models.Page[dto.UserSummary], error) {
	if err := validatePagination(page, size); err != nil {
		return models.Page[dto.UserSummary]{}, err
	}
	id, err := s.resolve(ctx, username)
	if err != nil {
		return models.Page[dto.UserSummary]{}, err
	}
	users, err := s.follows.GetFollowers(ctx, id, page, size)
	if err != nil {
		return models.Page[dto.UserSummary]{}, err
	}
	return dto.NewUserSummaryPage(users), nil
}

// GetFollowing lists the users that username follows.
func (s *FollowService) GetFollowing(ctx context.Context, username string, page, size int) (models.Page[dto.UserSummary], error) {
	if err := validatePagination(page, size); err != nil {
		return models.Page[dto.UserSummary]{}, err
	}
	id, err := s.resolve(ctx, username)
	if err != nil {
		return models.Page[dto.UserSummary]{}, err
	}
	users, err := s.follows.GetFollowing(ctx, id, page, size)
	if err != nil {
		return models.Page[dto.UserSummary]{}, err
	}
	return dto.NewUserSummaryPage(users), nil
}
