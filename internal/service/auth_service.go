// Package service implements the application's use cases on top of the
// repository layer: input validation, normalization, authorization checks
// and cross-entity orchestration. Services accept and return domain types
// or DTOs and report failures as typed application errors.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/HarminderDhillon/twitter-clone/internal/models"
	"github.com/HarminderDhillon/twitter-clone/internal/repository"
	"github.com/HarminderDhillon/twitter-clone/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries a registration request.
type RegisterInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginInput carries a login request.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthService handles registration, credential verification and token
// issuance.
type AuthService struct {
	users     repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates an auth service signing tokens with secret.
func NewAuthService(users repository.UserRepository, secret string) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(secret),
		tokenTTL:  24 * time.Hour,
	}
}

// Register validates the input, normalizes username and email to
// lowercase, hashes the password and persists the user. A taken username
// or email surfaces as a conflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:     strings.ToLower(in.Username),
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		DisplayName:  in.DisplayName,
		Enabled:      true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns a signed token plus the user.
// Unknown usernames and wrong passwords produce the same unauthorized
// error.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, *models.User, error) {
	user, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !user.Enabled {
		return "", nil, models.NewUnauthorizedError("Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, models.NewUnauthorizedError("Invalid username or password")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, models.NewInternalError(err)
	}
	return token, user, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// ParseToken validates a signed token and returns the subject user id
// and username.
func (s *AuthService) ParseToken(tokenString string) (uuid.UUID, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", models.NewUnauthorizedError("Invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", models.NewUnauthorizedError("Invalid or expired token")
	}
	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", models.NewUnauthorizedError("Invalid or expired token")
	}
	return id, username, nil
}
