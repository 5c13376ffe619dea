package notifications

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/HarminderDhillon/twitter-clone/internal/dto"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisNotifierPublishes(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	sub := client.Subscribe(ctx, FeedChannel)
	t.Cleanup(func() { sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	notifier := NewRedisNotifier(client)
	post := dto.PostDto{ID: uuid.New(), Content: "hello feed"}
	notifier.PostCreated(ctx, post)

	select {
	case msg := <-sub.Channel():
		var got dto.PostDto
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, post.ID, got.ID)
		assert.Equal(t, "hello feed", got.Content)
	case <-time.After(2 * time.Second):
		t.Fatal("no feed event received")
	}
}

func TestRedisNotifierNilClientIsNoop(t *testing.T) {
	notifier := NewRedisNotifier(nil)
	notifier.PostCreated(context.Background(), dto.PostDto{ID: uuid.New()})
}
