package service

import (
	"context"
	"strings"
	"testing"

	"github.com/HarminderDhillon/twitter-clone/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countsOf(followers, following int64) *stubFollowRepo {
	return &stubFollowRepo{
		countFollowers: func(context.Context, uuid.UUID) (int64, error) { return followers, nil },
		countFollowing: func(context.Context, uuid.UUID) (int64, error) { return following, nil },
	}
}

func TestGetProfileInjectsCounts(t *testing.T) {
	alice := testUser("alice")
	svc := NewUserService(userByName(alice), countsOf(12, 34))

	profile, err := svc.GetProfile(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, profile.ID)
	assert.Equal(t, int64(12), profile.FollowerCount)
	assert.Equal(t, int64(34), profile.FollowingCount)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewUserService(userByName(nil), countsOf(0, 0))

	_, err := svc.GetProfile(context.Background(), "ghost")
	assert.True(t, models.IsNotFound(err))
}

func TestCheckUsername(t *testing.T) {
	taken := map[string]bool{"alice": true}
	repo := &stubUserRepo{
		existsByName: func(_ context.Context, username string) (bool, error) {
			return taken[username], nil
		},
	}
	svc := NewUserService(repo, nil)
	ctx := context.Background()

	available, err := svc.CheckUsername(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, available)

	available, err = svc.CheckUsername(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, available)

	_, err = svc.CheckUsername(ctx, "a!")
	assert.True(t, models.IsValidation(err))

	_, err = svc.CheckUsername(ctx, "admin")
	assert.True(t, models.IsValidation(err), "reserved names are never available")
}

func TestUpdateProfile(t *testing.T) {
	alice := testUser("alice")
	repo := userByName(alice)
	var saved *models.User
	repo.update = func(_ context.Context, user *models.User) error {
		saved = user
		return nil
	}
	svc := NewUserService(repo, countsOf(0, 0))
	ctx := context.Background()

	bio := "gopher"
	location := "berlin"
	profile, err := svc.UpdateProfile(ctx, "alice", UpdateProfileInput{Bio: &bio, Location: &location})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "gopher", profile.Bio)
	assert.Equal(t, "berlin", profile.Location)
	assert.Equal(t, "alice", profile.DisplayName, "unset fields are untouched")

	long := strings.Repeat("b", 161)
	_, err = svc.UpdateProfile(ctx, "alice", UpdateProfileInput{Bio: &long})
	assert.True(t, models.IsValidation(err))
}

func TestDeleteAccount(t *testing.T) {
	alice := testUser("alice")
	repo := userByName(alice)
	var deleted uuid.UUID
	repo.delete = func(_ context.Context, id uuid.UUID) error {
		deleted = id
		return nil
	}
	svc := NewUserService(repo, nil)
	ctx := context.Background()

	require.NoError(t, svc.DeleteAccount(ctx, "alice"))
	assert.Equal(t, alice.ID, deleted)

	err := svc.DeleteAccount(ctx, "ghost")
	assert.True(t, models.IsNotFound(err))
}

func TestSearchUsersBlankQuery(t *testing.T) {
	svc := NewUserService(&stubUserRepo{}, nil)

	results, err := svc.Search(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, results)
}
