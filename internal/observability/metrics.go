package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twitterclone_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheHits counts cache-aside hits by key prefix.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twitterclone_cache_hits_total",
		Help: "Total number of cache hits by key prefix",
	}, []string{"prefix"})

	// CacheMisses counts cache-aside misses by key prefix.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twitterclone_cache_misses_total",
		Help: "Total number of cache misses by key prefix",
	}, []string{"prefix"})

	// PostsCreated counts created posts by kind (post, reply, repost).
	PostsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twitterclone_posts_created_total",
		Help: "Total number of posts created by kind",
	}, []string{"kind"})

	// TimelineQueryLatency records timeline query latency by timeline kind.
	TimelineQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "twitterclone_timeline_query_latency_seconds",
		Help:    "Timeline query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"timeline"})

	// FeedSubscribers is the gauge of active live-feed WebSocket connections.
	FeedSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "twitterclone_feed_subscribers",
		Help: "Number of active live feed WebSocket connections",
	})
)
