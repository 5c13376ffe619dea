package service

import (
	"context"
	"strings"

	"github.com/HarminderDhillon/twitter-clone/internal/dto"
	"github.com/HarminderDhillon/twitter-clone/internal/models"
	"github.com/HarminderDhillon/twitter-clone/internal/observability"
	"github.com/HarminderDhillon/twitter-clone/internal/repository"
	"github.com/HarminderDhillon/twitter-clone/internal/validation"
)

const maxPageSize = 100

// validatePagination rejects negative page indexes and out-of-range page
// sizes before they reach the database.
func validatePagination(page, size int) error {
	if page < 0 {
		return models.NewValidationError("page must not be negative")
	}
	if size <= 0 {
		return models.NewValidationError("size must be positive")
	}
	if size > maxPageSize {
		return models.NewValidationError("size must not exceed 100")
	}
	return nil
}

// UpdateProfileInput carries the editable profile fields. Nil pointers
// mean "leave unchanged".
type UpdateProfileInput struct {
	DisplayName  *string `json:"display_name"`
	Bio          *string `json:"bio"`
	Location     *string `json:"location"`
	Website      *string `json:"website"`
	ProfileImage *string `json:"profile_image"`
	HeaderImage  *string `json:"header_image"`
}

// UserService implements the user directory: profile lookup with
// injected social-graph counts, availability checks, profile updates,
// search and account deletion.
type UserService struct {
	users   repository.UserRepository
	follows repository.FollowRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, follows repository.FollowRepository) *UserService {
	return &UserService{users: users, follows: follows}
}

// GetProfile resolves a username (case-insensitively) to its public
// profile, injecting follower and following counts from the graph.
func (s *UserService) GetProfile(ctx context.Context, username string) (dto.UserDto, error) {
	span, ctx := observability.NewSpan(ctx, "UserService.GetProfile")
	defer span.End()

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		span.SetError(err)
		return dto.UserDto{}, err
	}
	if user == nil {
		return dto.UserDto{}, models.NewNotFoundError("User", username)
	}

	followers, err := s.follows.CountFollowers(ctx, user.ID)
	if err != nil {
		span.SetError(err)
		return dto.UserDto{}, err
	}
	following, err := s.follows.CountFollowing(ctx, user.ID)
	if err != nil {
		span.SetError(err)
		return dto.UserDto{}, err
	}
	return dto.NewUserDto(user, followers, following), nil
}

// CheckUsername reports whether a username is valid and not yet taken.
func (s *UserService) CheckUsername(ctx context.Context, username string) (bool, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return false, err
	}
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// CheckEmail reports whether an email is valid and not yet registered.
func (s *UserService) CheckEmail(ctx context.Context, email string) (bool, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return false, err
	}
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// UpdateProfile applies the provided fields to the user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, username string, in UpdateProfileInput) (dto.UserDto, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return dto.UserDto{}, err
	}
	if user == nil {
		return dto.UserDto{}, models.NewNotFoundError("User", username)
	}

	if in.Bio != nil {
		if err := validation.ValidateBio(*in.Bio); err != nil {
			return dto.UserDto{}, err
		}
		user.Bio = *in.Bio
	}
	if in.DisplayName != nil && strings.TrimSpace(*in.DisplayName) != "" {
		user.DisplayName = *in.DisplayName
	}
	if in.Location != nil {
		user.Location = *in.Location
	}
	if in.Website != nil {
		user.Website = *in.Website
	}
	if in.ProfileImage != nil {
		user.ProfileImage = *in.ProfileImage
	}
	if in.HeaderImage != nil {
		user.HeaderImage = *in.HeaderImage
	}

	if err := s.users.Update(ctx, user); err != nil {
		return dto.UserDto{}, err
	}
	return s.GetProfile(ctx, user.Username)
}

// DeleteAccount removes the user and everything attached to it: posts,
// likes and follow edges in both directions, with counters on surviving
// posts adjusted accordingly.
func (s *UserService) DeleteAccount(ctx context.Context, username string) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewNotFoundError("User", username)
	}
	return s.users.Delete(ctx, user.ID)
}

// Search finds users whose username or display name contains the query,
// case-insensitively.
func (s *UserService) Search(ctx context.Context, query string) ([]dto.UserSummary, error) {
	if strings.TrimSpace(query) == "" {
		return []dto.UserSummary{}, nil
	}
	users, err := s.users.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserSummary, len(users))
	for i := range users {
		out[i] = dto.NewUserSummary(&users[i])
	}
	return out, nil
}
