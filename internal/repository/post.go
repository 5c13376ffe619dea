package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/HarminderDhillon/twitter-clone/internal/cache"
	"github.com/HarminderDhillon/twitter-clone/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// trendingOrder ranks posts by a deterministic engagement score. Reposts
// weigh more than replies, replies more than likes; ties break on recency
// then id so pagination is stable.
const trendingOrder = "(like_count + reply_count * 2 + repost_count * 3) DESC, created_at DESC, id"

// PostRepository defines persistence operations for posts, replies,
// reposts and their hashtags. Writes that change a denormalized counter
// run in the same transaction as the write that creates or removes the
// counted child record.
type PostRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	Create(ctx context.Context, post *models.Post, tags []string) error
	CreateReply(ctx context.Context, parentID uuid.UUID, reply *models.Post, tags []string) error
	CreateRepost(ctx context.Context, originalID uuid.UUID, repost *models.Post, tags []string) error
	Update(ctx context.Context, post *models.Post, tags []string) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetUserTimeline(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.Post], error)
	GetHomeTimeline(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.Post], error)
	Search(ctx context.Context, query string, page, size int) (models.Page[*models.Post], error)
	GetTrending(ctx context.Context, page, size int) (models.Page[*models.Post], error)
	GetByHashtag(ctx context.Context, tag string, page, size int) (models.Page[*models.Post], error)
	GetReplies(ctx context.Context, parentID uuid.UUID, page, size int) (models.Page[*models.Post], error)
	Like(ctx context.Context, userID, postID uuid.UUID) error
	Unlike(ctx context.Context, userID, postID uuid.UUID) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		return r.db.WithContext(ctx).
			Preload("User").
			Preload("Hashtags").
			First(&post, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post, tags []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.attachHashtags(tx, post, tags); err != nil {
			return err
		}
		return tx.Create(post).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// CreateReply creates the reply and increments the parent's reply counter
// in one transaction: both happen or neither.
func (r *postRepository) CreateReply(ctx context.Context, parentID uuid.UUID, reply *models.Post, tags []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).
			Where("id = ?", parentID).
			UpdateColumn("reply_count", gorm.Expr("reply_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		reply.IsReply = true
		reply.ParentID = &parentID
		if err := r.attachHashtags(tx, reply, tags); err != nil {
			return err
		}
		return tx.Create(reply).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", parentID)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, parentID)
	return nil
}

// CreateRepost creates the repost and increments the original's repost
// counter in one transaction.
func (r *postRepository) CreateRepost(ctx context.Context, originalID uuid.UUID, repost *models.Post, tags []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).
			Where("id = ?", originalID).
			UpdateColumn("repost_count", gorm.Expr("repost_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		repost.IsRepost = true
		repost.OriginalPostID = &originalID
		if err := r.attachHashtags(tx, repost, tags); err != nil {
			return err
		}
		return tx.Create(repost).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", originalID)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, originalID)
	return nil
}

// attachHashtags resolves tag names to Hashtag rows, creating missing
// ones, and sets them on the post so GORM writes the join rows.
func (r *postRepository) attachHashtags(tx *gorm.DB, post *models.Post, tags []string) error {
	if tags == nil {
		post.Hashtags = []models.Hashtag{}
		return nil
	}
	hashtags := make([]models.Hashtag, 0, len(tags))
	for _, name := range tags {
		var tag models.Hashtag
		if err := tx.Where("name = ?", name).
			FirstOrCreate(&tag, models.Hashtag{Name: name}).Error; err != nil {
			return err
		}
		hashtags = append(hashtags, tag)
	}
	post.Hashtags = hashtags
	return nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post, tags []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.attachHashtags(tx, post, tags); err != nil {
			return err
		}
		if err := tx.Model(post).Association("Hashtags").Replace(post.Hashtags); err != nil {
			return err
		}
		return tx.Save(post).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

// Delete removes a post. If the post was a reply or a repost the
// corresponding counter on its parent/original is decremented in the same
// transaction.
func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", id)
		}
		return models.NewInternalError(err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if post.IsReply && post.ParentID != nil {
			if err := tx.Model(&models.Post{}).
				Where("id = ?", *post.ParentID).
				UpdateColumn("reply_count", gorm.Expr("reply_count - ?", 1)).Error; err != nil {
				return err
			}
		}
		if post.IsRepost && post.OriginalPostID != nil {
			if err := tx.Model(&models.Post{}).
				Where("id = ?", *post.OriginalPostID).
				UpdateColumn("repost_count", gorm.Expr("repost_count - ?", 1)).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Post{}, "id = ?", id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidatePost(ctx, id)
	if post.ParentID != nil {
		cache.InvalidatePost(ctx, *post.ParentID)
	}
	if post.OriginalPostID != nil {
		cache.InvalidatePost(ctx, *post.OriginalPostID)
	}
	return nil
}

// GetUserTimeline returns posts authored by userID, newest first.
func (r *postRepository) GetUserTimeline(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.Post], error) {
	q := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id = ?", userID).
		Order("created_at DESC, id")
	return r.paginate(q, page, size)
}

// GetHomeTimeline returns posts authored by every user that userID
// follows, newest first. The fan-in is a single set-based query against
// the follow edge table, not a per-followee loop, so it stays correct
// under pagination.
func (r *postRepository) GetHomeTimeline(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.Post], error) {
	following := r.db.
		Model(&models.Follow{}).
		Select("following_id").
		Where("follower_id = ?", userID)
	q := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id IN (?)", following).
		Order("created_at DESC, id")
	return r.paginate(q, page, size)
}

func (r *postRepository) Search(ctx context.Context, query string, page, size int) (models.Page[*models.Post], error) {
	like := "%" + strings.ToLower(query) + "%"
	q := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("LOWER(content) LIKE ?", like).
		Order("created_at DESC, id")
	return r.paginate(q, page, size)
}

func (r *postRepository) GetTrending(ctx context.Context, page, size int) (models.Page[*models.Post], error) {
	q := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Order(trendingOrder)
	return r.paginate(q, page, size)
}

func (r *postRepository) GetByHashtag(ctx context.Context, tag string, page, size int) (models.Page[*models.Post], error) {
	q := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Joins("JOIN post_hashtags ph ON ph.post_id = posts.id").
		Joins("JOIN hashtags h ON h.id = ph.hashtag_id").
		Where("h.name = ?", strings.ToLower(tag)).
		Order("posts.created_at DESC, posts.id")
	return r.paginate(q, page, size)
}

func (r *postRepository) GetReplies(ctx context.Context, parentID uuid.UUID, page, size int) (models.Page[*models.Post], error) {
	q := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("parent_id = ?", parentID).
		Order("created_at DESC, id")
	return r.paginate(q, page, size)
}

// paginate runs the shared count+fetch for a zero-based page index.
func (r *postRepository) paginate(q *gorm.DB, page, size int) (models.Page[*models.Post], error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return models.Page[*models.Post]{}, models.NewInternalError(err)
	}

	var posts []*models.Post
	if err := q.Session(&gorm.Session{}).
		Preload("User").
		Preload("Hashtags").
		Limit(size).
		Offset(page * size).
		Find(&posts).Error; err != nil {
		return models.Page[*models.Post]{}, models.NewInternalError(err)
	}
	return models.NewPage(posts, page, size, total), nil
}

// Like records a like idempotently (INSERT ... ON CONFLICT DO NOTHING)
// and increments the post's like counter only when a row was actually
// inserted, all in one transaction.
func (r *postRepository) Like(ctx context.Context, userID, postID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`INSERT INTO likes (id, user_id, post_id, created_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT (user_id, post_id) DO NOTHING`,
			uuid.New(), userID, postID, time.Now().UTC(),
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		inc := tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1))
		if inc.Error != nil {
			return inc.Error
		}
		if inc.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

// Unlike removes a like and decrements the counter only if an edge was
// actually deleted.
func (r *postRepository) Unlike(ctx context.Context, userID, postID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}
