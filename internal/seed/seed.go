// Package seed fills a database with generated users, follows and posts
// for local development.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/HarminderDhillon/twitter-clone/internal/models"
	"github.com/HarminderDhillon/twitter-clone/internal/repository"
	"github.com/HarminderDhillon/twitter-clone/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much data Run generates.
type Options struct {
	Users        int
	PostsPerUser int
	FollowRatio  float64 // probability that any user follows any other
	Password     string  // shared password for all generated accounts
}

// DefaultOptions seeds a small but connected graph.
func DefaultOptions() Options {
	return Options{
		Users:        25,
		PostsPerUser: 8,
		FollowRatio:  0.2,
		Password:     "password123",
	}
}

var topics = []string{"golang", "coffee", "music", "travel", "gaming", "food", "fitness", "books"}

// Run generates users, a follow mesh and hashtagged posts. It is not
// idempotent; run it against an empty database.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)
	follows := repository.NewFollowRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	created := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Username:     fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i),
			Email:        gofakeit.Email(),
			PasswordHash: string(hash),
			DisplayName:  gofakeit.Name(),
			Bio:          gofakeit.Sentence(8),
			Location:     gofakeit.City(),
			Enabled:      true,
		}
		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}
		created = append(created, user)
	}

	for _, follower := range created {
		for _, target := range created {
			if follower.ID == target.ID || gofakeit.Float64() > opts.FollowRatio {
				continue
			}
			if err := follows.Follow(ctx, follower.ID, target.ID); err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
		}
	}

	for _, author := range created {
		for i := 0; i < opts.PostsPerUser; i++ {
			content := gofakeit.Sentence(gofakeit.Number(5, 15))
			if gofakeit.Bool() {
				content = fmt.Sprintf("%s #%s", content, gofakeit.RandomString(topics))
			}
			post := &models.Post{
				UserID:  author.ID,
				Content: content,
			}
			if err := posts.Create(ctx, post, validation.ExtractHashtags(content)); err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
		}
	}
	return nil
}
