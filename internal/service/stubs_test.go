package service

import (
	"context"

	"github.com/HarminderDhillon/twitter-clone/internal/models"

	"github.com/google/uuid"
)

// stubUserRepo implements repository.UserRepository with overridable
// function fields. Unset methods are never expected to be called.
type stubUserRepo struct {
	getByID       func(ctx context.Context, id uuid.UUID) (*models.User, error)
	getByUsername func(ctx context.Context, username string) (*models.User, error)
	getByEmail    func(ctx context.Context, email string) (*models.User, error)
	existsByName  func(ctx context.Context, username string) (bool, error)
	existsByEmail func(ctx context.Context, email string) (bool, error)
	create        func(ctx context.Context, user *models.User) error
	update        func(ctx context.Context, user *models.User) error
	delete        func(ctx context.Context, id uuid.UUID) error
	search        func(ctx context.Context, query string) ([]models.User, error)
	list          func(ctx context.Context, limit, offset int) ([]models.User, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.getByID(ctx, id)
}
func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsername(ctx, username)
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmail(ctx, email)
}
func (s *stubUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.existsByName(ctx, username)
}
func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.existsByEmail(ctx, email)
}
func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.create(ctx, user)
}
func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return s.update(ctx, user)
}
func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return s.delete(ctx, id) }
func (s *stubUserRepo) Search(ctx context.Context, query string) ([]models.User, error) {
	return s.search(ctx, query)
}
func (s *stubUserRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.list(ctx, limit, offset)
}

// userByName is the common case: one known user, everyone else missing.
func userByName(user *models.User) *stubUserRepo {
	return &stubUserRepo{
		getByUsername: func(_ context.Context, username string) (*models.User, error) {
			if user != nil && username == user.Username {
				return user, nil
			}
			return nil, nil
		},
	}
}

// stubPostRepo implements repository.PostRepository.
type stubPostRepo struct {
	getByID         func(ctx context.Context, id uuid.UUID) (*models.Post, error)
	create          func(ctx context.Context, post *models.Post, tags []string) error
	createReply     func(ctx context.Context, parentID uuid.UUID, reply *models.Post, tags []string) error
	createRepost    func(ctx context.Context, originalID uuid.UUID, repost *models.Post, tags []string) error
	update          func(ctx context.Context, post *models.Post, tags []string) error
	delete          func(ctx context.Context, id uuid.UUID) error
	getUserTimeline func(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.Post], error)
	getHomeTimeline func(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.Post], error)
	search          func(ctx context.Context, query string, page, size int) (models.Page[*models.Post], error)
	getTrending     func(ctx context.Context, page, size int) (models.Page[*models.Post], error)
	getByHashtag    func(ctx context.Context, tag string, page, size int) (models.Page[*models.Post], error)
	getReplies      func(ctx context.Context, parentID uuid.UUID, page, size int) (models.Page[*models.Post], error)
	like            func(ctx context.Context, userID, postID uuid.UUID) error
	unlike          func(ctx context.Context, userID, postID uuid.UUID) error
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.getByID(ctx, id)
}
func (s *stubPostRepo) Create(ctx context.Context, post *models.Post, tags []string) error {
	return s.create(ctx, post, tags)
}
func (s *stubPostRepo) CreateReply(ctx context.Context, parentID uuid.UUID, reply *models.Post, tags []string) error {
	return s.createReply(ctx, parentID, reply, tags)
}
func (s *stubPostRepo) CreateRepost(ctx context.Context, originalID uuid.UUID, repost *models.Post, tags []string) error {
	return s.createRepost(ctx, originalID, repost, tags)
}
func (s *stubPostRepo) Update(ctx context.Context, post *models.Post, tags []string) error {
	return s.update(ctx, post, tags)
}
func (s *stubPostRepo) Delete(ctx context.Context, id uuid.UUID) error { return s.delete(ctx, id) }
func (s *stubPostRepo) GetUserTimeline(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.Post], error) {
	return s.getUserTimeline(ctx, userID, page, size)
}
func (s *stubPostRepo) GetHomeTimeline(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.Post], error) {
	return s.getHomeTimeline(ctx, userID, page, size)
}
func (s *stubPostRepo) Search(ctx context.Context, query string, page, size int) (models.Page[*models.Post], error) {
	return s.search(ctx, query, page, size)
}
func (s *stubPostRepo) GetTrending(ctx context.Context, page, size int) (models.Page[*models.Post], error) {
	return s.getTrending(ctx, page, size)
}
func (s *stubPostRepo) GetByHashtag(ctx context.Context, tag string, page, size int) (models.Page[*models.Post], error) {
	return s.getByHashtag(ctx, tag, page, size)
}
func (s *stubPostRepo) GetReplies(ctx context.Context, parentID uuid.UUID, page, size int) (models.Page[*models.Post], error) {
	return s.getReplies(ctx, parentID, page, size)
}
func (s *stubPostRepo) Like(ctx context.Context, userID, postID uuid.UUID) error {
	return s.like(ctx, userID, postID)
}
func (s *stubPostRepo) Unlike(ctx context.Context, userID, postID uuid.UUID) error {
	return s.unlike(ctx, userID, postID)
}

// stubFollowRepo implements repository.FollowRepository.
type stubFollowRepo struct {
	follow         func(ctx context.Context, followerID, followingID uuid.UUID) error
	unfollow       func(ctx context.Context, followerID, followingID uuid.UUID) error
	isFollowing    func(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	countFollowers func(ctx context.Context, userID uuid.UUID) (int64, error)
	countFollowing func(ctx context.Context, userID uuid.UUID) (int64, error)
	getFollowers   func(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.User], error)
	getFollowing   func(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.User], error)
}

func (s *stubFollowRepo) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return s.follow(ctx, followerID, followingID)
}
func (s *stubFollowRepo) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return s.unfollow(ctx, followerID, followingID)
}
func (s *stubFollowRepo) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	return s.isFollowing(ctx, followerID, followingID)
}
func (s *stubFollowRepo) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.countFollowers(ctx, userID)
}
func (s *stubFollowRepo) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.countFollowing(ctx, userID)
}
func (s *stubFollowRepo) GetFollowers(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.User], error) {
	return s.getFollowers(ctx, userID, page, size)
}
func (s *stubFollowRepo) GetFollowing(ctx context.Context, userID uuid.UUID, page, size int) (models.Page[*models.User], error) {
	return s.getFollowing(ctx, userID, page, size)
}
