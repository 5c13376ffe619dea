// Package notifications fans newly created posts out to live feed
// subscribers. Posts are published on a Redis channel so every server
// instance sees them, and each instance relays to its own WebSocket
// connections.
package notifications

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/HarminderDhillon/twitter-clone/internal/dto"
	"github.com/HarminderDhillon/twitter-clone/internal/observability"

	"github.com/redis/go-redis/v9"
)

// FeedChannel is the Redis pub/sub channel carrying new posts.
const FeedChannel = "feed:posts"

// RedisNotifier publishes created posts to the feed channel. Publishing
// is best effort; a failure is logged and the write path continues.
type RedisNotifier struct {
	client *redis.Client
}

// NewRedisNotifier creates a notifier over client. A nil client yields a
// notifier that drops everything.
func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

// PostCreated publishes the post to the feed channel.
func (n *RedisNotifier) PostCreated(ctx context.Context, post dto.PostDto) {
	if n.client == nil {
		return
	}
	payload, err := json.Marshal(post)
	if err != nil {
		observability.Logger.Error("marshal feed event", slog.Any("error", err))
		return
	}
	if err := n.client.Publish(ctx, FeedChannel, payload).Err(); err != nil {
		observability.Logger.Error("publish feed event",
			slog.Any("error", err),
			slog.String("channel", FeedChannel),
		)
	}
}
