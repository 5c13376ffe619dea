package service

import (
	"context"
	"testing"

	"github.com/HarminderDhillon/twitter-clone/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestRegisterNormalizesAndHashes(t *testing.T) {
	var created *models.User
	repo := &stubUserRepo{
		create: func(_ context.Context, user *models.User) error {
			created = user
			return nil
		},
	}
	svc := NewAuthService(repo, testSecret)

	user, err := svc.Register(context.Background(), RegisterInput{
		Username: "Alice",
		Email:    "Alice@Example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "s3cretpass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cretpass")))
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, testSecret)
	ctx := context.Background()

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"bad username", RegisterInput{Username: "a!", Email: "a@b.com", Password: "longenough"}},
		{"reserved username", RegisterInput{Username: "admin", Email: "a@b.com", Password: "longenough"}},
		{"bad email", RegisterInput{Username: "alice", Email: "nope", Password: "longenough"}},
		{"short password", RegisterInput{Username: "alice", Email: "a@b.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.in)
			assert.True(t, models.IsValidation(err), "want validation error, got %v", err)
		})
	}
}

func TestRegisterSurfacesConflict(t *testing.T) {
	repo := &stubUserRepo{
		create: func(_ context.Context, _ *models.User) error {
			return models.NewConflictError("Username or email is already taken")
		},
	}
	svc := NewAuthService(repo, testSecret)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "a@b.com", Password: "longenough",
	})
	assert.True(t, models.IsConflict(err))
}

func TestLoginAndTokenRoundtrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	require.NoError(t, err)
	alice := &models.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: string(hash),
		Enabled:      true,
	}
	svc := NewAuthService(userByName(alice), testSecret)
	ctx := context.Background()

	token, user, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)

	id, username, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, id)
	assert.Equal(t, "alice", username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.MinCost)
	alice := &models.User{ID: uuid.New(), Username: "alice", PasswordHash: string(hash), Enabled: true}
	svc := NewAuthService(userByName(alice), testSecret)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "wrongpass"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)

	_, _, err = svc.Login(ctx, LoginInput{Username: "ghost", Password: "whatever"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code, "unknown user and bad password are indistinguishable")
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.MinCost)
	alice := &models.User{ID: uuid.New(), Username: "alice", PasswordHash: string(hash), Enabled: false}
	svc := NewAuthService(userByName(alice), testSecret)

	_, _, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "rightpass"})
	assert.Error(t, err)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Username: "alice"}
	svc := NewAuthService(&stubUserRepo{}, testSecret)
	token, err := svc.issueToken(alice)
	require.NoError(t, err)

	other := NewAuthService(&stubUserRepo{}, "different-secret")
	_, _, err = other.ParseToken(token)
	assert.Error(t, err)

	_, _, err = svc.ParseToken(token + "x")
	assert.Error(t, err)
}
