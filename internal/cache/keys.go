package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	userKeyPrefix     = "user:%s"
	postKeyPrefix     = "post:%s"
	trendingKeyPrefix = "trending:%d:%d"
)

const (
	// UserTTL bounds staleness of cached user profiles.
	UserTTL = 5 * time.Minute
	// PostTTL bounds staleness of cached posts. Posts are invalidated on
	// every counter change, so the TTL is a backstop.
	PostTTL = 30 * time.Minute
	// TrendingTTL bounds staleness of the trending page; it is recomputed
	// rather than invalidated.
	TrendingTTL = 1 * time.Minute
)

// UserKey is the cache key for a user looked up by lowercase username.
func UserKey(username string) string {
	return fmt.Sprintf(userKeyPrefix, username)
}

// PostKey is the cache key for a post by id.
func PostKey(id uuid.UUID) string {
	return fmt.Sprintf(postKeyPrefix, id)
}

// TrendingKey is the cache key for one page of the trending feed.
func TrendingKey(page, size int) string {
	return fmt.Sprintf(trendingKeyPrefix, page, size)
}

// Invalidate removes a single key. No-op without a Redis client.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser removes the cached profile for a username.
func InvalidateUser(ctx context.Context, username string) {
	Invalidate(ctx, UserKey(username))
}

// InvalidatePost removes a cached post.
func InvalidatePost(ctx context.Context, id uuid.UUID) {
	Invalidate(ctx, PostKey(id))
}
