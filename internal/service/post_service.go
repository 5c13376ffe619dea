package service

import (
	"context"
	"strings"
	"time"

	"github.com/HarminderDhillon/twitter-clone/internal/cache"
	"github.com/HarminderDhillon/twitter-clone/internal/dto"
	"github.com/HarminderDhillon/twitter-clone/internal/models"
	"github.com/HarminderDhillon/twitter-clone/internal/observability"
	"github.com/HarminderDhillon/twitter-clone/internal/repository"
	"github.com/HarminderDhillon/twitter-clone/internal/validation"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// CreatePostInput carries the body of a new post, reply, or repost.
type CreatePostInput struct {
	Content string   `json:"content"`
	Media   []string `json:"media"`
}

// FeedNotifier receives newly created posts for fan-out to live feed
// subscribers. Notification is best effort and never blocks the write
// path.
type FeedNotifier interface {
	PostCreated(ctx context.Context, post dto.PostDto)
}

// PostService implements the post store and query engine: creation of
// posts, replies and reposts with hashtag extraction, engagement, and
// the timeline, search, trending and hashtag queries.
type PostService struct {
	posts    repository.PostRepository
	users    repository.UserRepository
	notifier FeedNotifier
}

// NewPostService creates a new post service. notifier may be nil.
func NewPostService(posts repository.PostRepository, users repository.UserRepository, notifier FeedNotifier) *PostService {
	return &PostService{posts: posts, users: users, notifier: notifier}
}

func (s *PostService) author(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	return user, nil
}

// GetPost returns a single post with its author and hashtags.
func (s *PostService) GetPost(ctx context.Context, id uuid.UUID) (dto.PostDto, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return dto.PostDto{}, err
	}
	return dto.NewPostDto(post), nil
}

// CreatePost creates a top-level post for username. Hashtags are
// extracted from the content, lowercased and linked.
func (s *PostService) CreatePost(ctx context.Context, username string, in CreatePostInput) (dto.PostDto, error) {
	span, ctx := observability.NewSpan(ctx, "PostService.CreatePost")
	defer span.End()

	if err := validation.ValidatePostContent(in.Content); err != nil {
		return dto.PostDto{}, err
	}
	user, err := s.author(ctx, username)
	if err != nil {
		span.SetError(err)
		return dto.PostDto{}, err
	}

	post := &models.Post{
		UserID:  user.ID,
		Content: in.Content,
		Media:   in.Media,
	}
	tags := validation.ExtractHashtags(in.Content)
	if err := s.posts.Create(ctx, post, tags); err != nil {
		span.SetError(err)
		return dto.PostDto{}, err
	}
	observability.PostsCreated.WithLabelValues("post").Inc()

	post.User = *user
	out := dto.NewPostDto(post)
	s.notify(ctx, out)
	return out, nil
}

// CreateReply creates a reply to parentID. The parent must exist; its
// reply counter moves with the insert.
func (s *PostService) CreateReply(ctx context.Context, parentID uuid.UUID, username string, in CreatePostInput) (dto.PostDto, error) {
	if err := validation.ValidatePostContent(in.Content); err != nil {
		return dto.PostDto{}, err
	}
	user, err := s.author(ctx, username)
	if err != nil {
		return dto.PostDto{}, err
	}

	reply := &models.Post{
		UserID:  user.ID,
		Content: in.Content,
		Media:   in.Media,
	}
	tags := validation.ExtractHashtags(in.Content)
	if err := s.posts.CreateReply(ctx, parentID, reply, tags); err != nil {
		return dto.PostDto{}, err
	}
	observability.PostsCreated.WithLabelValues("reply").Inc()

	reply.User = *user
	out := dto.NewPostDto(reply)
	s.notify(ctx, out)
	return out, nil
}

// CreateRepost creates a repost of originalID. Content is the optional
// quote and may be empty; when present it obeys the same length rule as
// a post.
func (s *PostService) CreateRepost(ctx context.Context, originalID uuid.UUID, username string, in CreatePostInput) (dto.PostDto, error) {
	if strings.TrimSpace(in.Content) != "" {
		if err := validation.ValidatePostContent(in.Content); err != nil {
			return dto.PostDto{}, err
		}
	}
	user, err := s.author(ctx, username)
	if err != nil {
		return dto.PostDto{}, err
	}

	repost := &models.Post{
		UserID:  user.ID,
		Content: in.Content,
		Media:   in.Media,
	}
	tags := validation.ExtractHashtags(in.Content)
	if err := s.posts.CreateRepost(ctx, originalID, repost, tags); err != nil {
		return dto.PostDto{}, err
	}
	observability.PostsCreated.WithLabelValues("repost").Inc()

	repost.User = *user
	out := dto.NewPostDto(repost)
	s.notify(ctx, out)
	return out, nil
}

// UpdatePost edits the content of the caller's own post and relinks its
// hashtags. Editing never turns a post into a reply or repost, or back.
func (s *PostService) UpdatePost(ctx context.Context, id uuid.UUID, username, content string) (dto.PostDto, error) {
	if err := validation.ValidatePostContent(content); err != nil {
		return dto.PostDto{}, err
	}
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return dto.PostDto{}, err
	}
	if !strings.EqualFold(post.User.Username, username) {
		return dto.PostDto{}, models.NewUnauthorizedError("You can only edit your own posts")
	}

	post.Content = content
	tags := validation.ExtractHashtags(content)
	if err := s.posts.Update(ctx, post, tags); err != nil {
		return dto.PostDto{}, err
	}
	return dto.NewPostDto(post), nil
}

// DeletePost removes the caller's own post.
func (s *PostService) DeletePost(ctx context.Context, id uuid.UUID, username string) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !strings.EqualFold(post.User.Username, username) {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.posts.Delete(ctx, id)
}

// Like records username's like on a post. Liking twice is a no-op.
func (s *PostService) Like(ctx context.Context, postID uuid.UUID, username string) error {
	user, err := s.author(ctx, username)
	if err != nil {
		return err
	}
	return s.posts.Like(ctx, user.ID, postID)
}

// Unlike removes username's like. Unliking a post that was never liked
// is a no-op.
func (s *PostService) Unlike(ctx context.Context, postID uuid.UUID, username string) error {
	user, err := s.author(ctx, username)
	if err != nil {
		return err
	}
	return s.posts.Unlike(ctx, user.ID, postID)
}

// GetUserTimeline returns username's own posts, newest first.
func (s *PostService) GetUserTimeline(ctx context.Context, username string, page, size int) (models.Page[dto.PostDto], error) {
	if err := validatePagination(page, size); err != nil {
		return models.Page[dto.PostDto]{}, err
	}
	user, err := s.author(ctx, username)
	if err != nil {
		return models.Page[dto.PostDto]{}, err
	}

	timer := time.Now()
	posts, err := s.posts.GetUserTimeline(ctx, user.ID, page, size)
	observability.TimelineQueryLatency.WithLabelValues("user").Observe(time.Since(timer).Seconds())
	if err != nil {
		return models.Page[dto.PostDto]{}, err
	}
	return dto.NewPostPage(posts), nil
}

// GetHomeTimeline returns the posts of everyone username follows,
// newest first. The user's own posts are not included.
func (s *PostService) GetHomeTimeline(ctx context.Context, username string, page, size int) (models.Page[dto.PostDto], error) {
	span, ctx := observability.NewSpan(ctx, "PostService.GetHomeTimeline")
	defer span.End()

	if err := validatePagination(page, size); err != nil {
		return models.Page[dto.PostDto]{}, err
	}
	user, err := s.author(ctx, username)
	if err != nil {
		span.SetError(err)
		return models.Page[dto.PostDto]{}, err
	}
	span.AddAttributes(attribute.String("user.id", user.ID.String()))

	timer := time.Now()
	posts, err := s.posts.GetHomeTimeline(ctx, user.ID, page, size)
	observability.TimelineQueryLatency.WithLabelValues("home").Observe(time.Since(timer).Seconds())
	if err != nil {
		span.SetError(err)
		return models.Page[dto.PostDto]{}, err
	}
	return dto.NewPostPage(posts), nil
}

// Search finds posts whose content contains the query,
// case-insensitively, newest first.
func (s *PostService) Search(ctx context.Context, query string, page, size int) (models.Page[dto.PostDto], error) {
	if err := validatePagination(page, size); err != nil {
		return models.Page[dto.PostDto]{}, err
	}
	if strings.TrimSpace(query) == "" {
		return models.NewPage([]dto.PostDto{}, page, size, 0), nil
	}
	posts, err := s.posts.Search(ctx, query, page, size)
	if err != nil {
		return models.Page[dto.PostDto]{}, err
	}
	return dto.NewPostPage(posts), nil
}

// GetTrending ranks posts by engagement. Results are cached briefly per
// page since the ranking is expensive and tolerates slight staleness.
func (s *PostService) GetTrending(ctx context.Context, page, size int) (models.Page[dto.PostDto], error) {
	if err := validatePagination(page, size); err != nil {
		return models.Page[dto.PostDto]{}, err
	}

	var out models.Page[dto.PostDto]
	err := cache.Aside(ctx, cache.TrendingKey(page, size), &out, cache.TrendingTTL, func() error {
		posts, err := s.posts.GetTrending(ctx, page, size)
		if err != nil {
			return err
		}
		out = dto.NewPostPage(posts)
		return nil
	})
	if err != nil {
		return models.Page[dto.PostDto]{}, err
	}
	return out, nil
}

// GetByHashtag returns the posts carrying the tag, matched
// case-insensitively, newest first.
func (s *PostService) GetByHashtag(ctx context.Context, tag string, page, size int) (models.Page[dto.PostDto], error) {
	if err := validatePagination(page, size); err != nil {
		return models.Page[dto.PostDto]{}, err
	}
	tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
	if tag == "" {
		return models.NewPage([]dto.PostDto{}, page, size, 0), nil
	}
	posts, err := s.posts.GetByHashtag(ctx, tag, page, size)
	if err != nil {
		return models.Page[dto.PostDto]{}, err
	}
	return dto.NewPostPage(posts), nil
}

// GetReplies returns the direct replies to a post, newest first.
func (s *PostService) GetReplies(ctx context.Context, parentID uuid.UUID, page, size int) (models.Page[dto.PostDto], error) {
	if err := validatePagination(page, size); err != nil {
		return models.Page[dto.PostDto]{}, err
	}
	if _, err := s.posts.GetByID(ctx, parentID); err != nil {
		return models.Page[dto.PostDto]{}, err
	}
	posts, err := s.posts.GetReplies(ctx, parentID, page, size)
	if err != nil {
		return models.Page[dto.PostDto]{}, err
	}
	return dto.NewPostPage(posts), nil
}

func (s *PostService) notify(ctx context.Context, post dto.PostDto) {
	if s.notifier != nil {
		s.notifier.PostCreated(ctx, post)
	}
}
