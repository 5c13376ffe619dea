package service

import (
	"context"
	"strings"
	"testing"

	"github.com/HarminderDhillon/twitter-clone/internal/dto"
	"github.com/HarminderDhillon/twitter-clone/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(username string) *models.User {
	return &models.User{ID: uuid.New(), Username: username, DisplayName: username}
}

func TestCreatePostExtractsHashtags(t *testing.T) {
	alice := testUser("alice")
	var gotTags []string
	posts := &stubPostRepo{
		create: func(_ context.Context, post *models.Post, tags []string) error {
			gotTags = tags
			post.ID = uuid.New()
			return nil
		},
	}
	svc := NewPostService(posts, userByName(alice), nil)

	out, err := svc.CreatePost(context.Background(), "alice", CreatePostInput{
		Content: "shipping #Go and #go and #Redis",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "redis"}, gotTags)
	assert.Equal(t, "alice", out.Author.Username)
}

func TestCreatePostValidation(t *testing.T) {
	svc := NewPostService(&stubPostRepo{}, userByName(testUser("alice")), nil)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, "alice", CreatePostInput{Content: "   "})
	assert.True(t, models.IsValidation(err))

	_, err = svc.CreatePost(ctx, "alice", CreatePostInput{Content: strings.Repeat("x", 281)})
	assert.True(t, models.IsValidation(err))

	_, err = svc.CreatePost(ctx, "ghost", CreatePostInput{Content: "hello"})
	assert.True(t, models.IsNotFound(err))
}

func TestCreateReplyPropagatesMissingParent(t *testing.T) {
	alice := testUser("alice")
	parentID := uuid.New()
	posts := &stubPostRepo{
		createReply: func(_ context.Context, id uuid.UUID, _ *models.Post, _ []string) error {
			return models.NewNotFoundError("Post", id)
		},
	}
	svc := NewPostService(posts, userByName(alice), nil)

	_, err := svc.CreateReply(context.Background(), parentID, "alice", CreatePostInput{Content: "hi"})
	assert.True(t, models.IsNotFound(err))
}

func TestCreateRepostAllowsEmptyQuote(t *testing.T) {
	alice := testUser("alice")
	originalID := uuid.New()
	var reposted bool
	posts := &stubPostRepo{
		createRepost: func(_ context.Context, id uuid.UUID, repost *models.Post, _ []string) error {
			reposted = true
			repost.IsRepost = true
			repost.OriginalPostID = &id
			return nil
		},
	}
	svc := NewPostService(posts, userByName(alice), nil)

	out, err := svc.CreateRepost(context.Background(), originalID, "alice", CreatePostInput{})
	require.NoError(t, err)
	assert.True(t, reposted)
	assert.True(t, out.IsRepost)
	require.NotNil(t, out.OriginalPostID)
	assert.Equal(t, originalID, *out.OriginalPostID)
}

func TestUpdatePostRequiresAuthor(t *testing.T) {
	alice := testUser("alice")
	post := &models.Post{ID: uuid.New(), UserID: alice.ID, User: *alice, Content: "original"}
	posts := &stubPostRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (*models.Post, error) { return post, nil },
		update:  func(_ context.Context, _ *models.Post, _ []string) error { return nil },
	}
	svc := NewPostService(posts, userByName(alice), nil)
	ctx := context.Background()

	_, err := svc.UpdatePost(ctx, post.ID, "mallory", "hijacked")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)

	out, err := svc.UpdatePost(ctx, post.ID, "ALICE", "edited #now")
	require.NoError(t, err)
	assert.Equal(t, "edited #now", out.Content)
	assert.Equal(t, []string{"now"}, out.Hashtags)
}

func TestDeletePostRequiresAuthor(t *testing.T) {
	alice := testUser("alice")
	post := &models.Post{ID: uuid.New(), UserID: alice.ID, User: *alice}
	deleted := false
	posts := &stubPostRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (*models.Post, error) { return post, nil },
		delete:  func(_ context.Context, _ uuid.UUID) error { deleted = true; return nil },
	}
	svc := NewPostService(posts, userByName(alice), nil)
	ctx := context.Background()

	err := svc.DeletePost(ctx, post.ID, "mallory")
	assert.Error(t, err)
	assert.False(t, deleted)

	require.NoError(t, svc.DeletePost(ctx, post.ID, "alice"))
	assert.True(t, deleted)
}

func TestTimelinePaginationValidation(t *testing.T) {
	svc := NewPostService(&stubPostRepo{}, userByName(testUser("alice")), nil)
	ctx := context.Background()

	_, err := svc.GetHomeTimeline(ctx, "alice", -1, 20)
	assert.True(t, models.IsValidation(err))

	_, err = svc.GetHomeTimeline(ctx, "alice", 0, 0)
	assert.True(t, models.IsValidation(err))

	_, err = svc.GetUserTimeline(ctx, "alice", 0, 101)
	assert.True(t, models.IsValidation(err))
}

func TestHomeTimelineResolvesUser(t *testing.T) {
	alice := testUser("alice")
	var queried uuid.UUID
	posts := &stubPostRepo{
		getHomeTimeline: func(_ context.Context, userID uuid.UUID, page, size int) (models.Page[*models.Post], error) {
			queried = userID
			return models.NewPage([]*models.Post{}, page, size, 0), nil
		},
	}
	svc := NewPostService(posts, userByName(alice), nil)

	page, err := svc.GetHomeTimeline(context.Background(), "alice", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, queried)
	assert.NotNil(t, page.Content)

	_, err = svc.GetHomeTimeline(context.Background(), "ghost", 0, 20)
	assert.True(t, models.IsNotFound(err))
}

func TestGetByHashtagStripsPrefix(t *testing.T) {
	var gotTag string
	posts := &stubPostRepo{
		getByHashtag: func(_ context.Context, tag string, page, size int) (models.Page[*models.Post], error) {
			gotTag = tag
			return models.NewPage([]*models.Post{}, page, size, 0), nil
		},
	}
	svc := NewPostService(posts, userByName(nil), nil)

	_, err := svc.GetByHashtag(context.Background(), "#golang", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, "golang", gotTag)

	empty, err := svc.GetByHashtag(context.Background(), "  ", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.TotalElements)
}

func TestSearchBlankQueryReturnsEmptyPage(t *testing.T) {
	svc := NewPostService(&stubPostRepo{}, userByName(nil), nil)

	page, err := svc.Search(context.Background(), "   ", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalElements)
	assert.Empty(t, page.Content)
}

type notifierFunc func()

func (f notifierFunc) PostCreated(context.Context, dto.PostDto) { f() }

func TestCreatePostNotifiesFeed(t *testing.T) {
	alice := testUser("alice")
	posts := &stubPostRepo{
		create: func(_ context.Context, post *models.Post, _ []string) error {
			post.ID = uuid.New()
			return nil
		},
	}
	notified := 0
	svc := NewPostService(posts, userByName(alice), notifierFunc(func() { notified++ }))

	_, err := svc.CreatePost(context.Background(), "alice", CreatePostInput{Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, 1, notified)
}
