package repository

import (
	"context"
	"time"

	"github.com/HarminderDhillon/twitter-clone/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowRepository manages directed follow edges between users.
// A follow of B is independent of B following A.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error)
	GetFollowers(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.User], error)
	GetFollowing(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.User], error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow inserts the edge idempotently. Re-following an already followed
// user is a no-op, never a duplicate edge.
func (r *followRepository) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO follows (id, follower_id, following_id, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (follower_id, following_id) DO NOTHING`,
		uuid.New(), followerID, followingID, time.Now().UTC(),
	)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	return nil
}

// Unfollow removes the edge. Removing an edge that does not exist is a
// no-op.
func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// GetFollowers lists the users following userID, most recent follow
// first.
func (r *followRepository) GetFollowers(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.User], error) {
	base := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN follows f ON f.follower_id = users.id").
		Where("f.following_id = ?", userID).
		Order("f.created_at DESC, users.id")
	return r.paginateUsers(base, page, size)
}

// GetFollowing lists the users that userID follows, most recent follow
// first.
func (r *followRepository) GetFollowing(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.User], error) {
	base := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN follows f ON f.following_id = users.id").
		Where("f.follower_id = ?", userID).
		Order("f.created_at DESC, users.id")
	return r.paginateUsers(base, page, size)
}

func (r *followRepository) paginateUsers(q *gorm.DB, page, size int) (models.Page[*models.User], error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return models.Page[*models.User]{}, models.NewInternalError(err)
	}

	var users []*models.User
	if err := q.Session(&gorm.Session{}).
		Limit(size).
		Offset(page * size).
		Find(&users).Error; err != nil {
		return models.Page[*models.User]{}, models.NewInternalError(err)
	}
	return models.NewPage(users, page, size, total), nil
}
