// Command seed populates the development database with generated data.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/HarminderDhillon/twitter-clone/internal/config"
	"github.com/HarminderDhillon/twitter-clone/internal/database"
	"github.com/HarminderDhillon/twitter-clone/internal/observability"
	"github.com/HarminderDhillon/twitter-clone/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of users to create")
	flag.IntVar(&opts.PostsPerUser, "posts", opts.PostsPerUser, "posts per user")
	flag.Float64Var(&opts.FollowRatio, "follow-ratio", opts.FollowRatio, "probability of a follow edge between any two users")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		observability.Logger.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		observability.Logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := seed.Run(context.Background(), db, opts); err != nil {
		observability.Logger.Error("seed", slog.Any("error", err))
		os.Exit(1)
	}
	observability.Logger.Info("seed complete",
		slog.Int("users", opts.Users),
		slog.Int("posts_per_user", opts.PostsPerUser),
	)
}
