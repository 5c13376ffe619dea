// Package server wires the HTTP surface: Fiber app construction,
// middleware, route registration, and the request handlers that bridge
// HTTP to the service layer.
package server

import (
	"time"

	"github.com/HarminderDhillon/twitter-clone/internal/config"
	"github.com/HarminderDhillon/twitter-clone/internal/middleware"
	"github.com/HarminderDhillon/twitter-clone/internal/models"
	"github.com/HarminderDhillon/twitter-clone/internal/notifications"
	"github.com/HarminderDhillon/twitter-clone/internal/repository"
	"github.com/HarminderDhillon/twitter-clone/internal/service"

	_ "github.com/HarminderDhillon/twitter-clone/docs"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/gofiber/websocket/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds the Fiber app and the services the handlers depend on.
type Server struct {
	App     *fiber.App
	Config  *config.Config
	Auth    *service.AuthService
	Users   *service.UserService
	Follows *service.FollowService
	Posts   *service.PostService
	Hub     *notifications.Hub
}

// New constructs the full server: repositories over db, services over
// the repositories, and a Fiber app with middleware and routes. A nil
// redisClient disables the live feed relay; caching already degrades on
// its own.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	followRepo := repository.NewFollowRepository(db)

	notifier := notifications.NewRedisNotifier(redisClient)
	hub := notifications.NewHub(redisClient)

	s := &Server{
		Config:  cfg,
		Auth:    service.NewAuthService(userRepo, cfg.JWTSecret),
		Users:   service.NewUserService(userRepo, followRepo),
		Follows: service.NewFollowService(userRepo, followRepo),
		Posts:   service.NewPostService(postRepo, userRepo, notifier),
		Hub:     hub,
	}
	s.App = fiber.New(fiber.Config{
		AppName:      "twitter-clone-api",
		ErrorHandler: errorHandler,
	})
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// errorHandler maps errors that escape handlers onto the application's
// error envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return models.RespondWithError(c, fe.Code, err)
	}
	return models.RespondWithError(c, models.StatusForError(err), err)
}

func (s *Server) setupMiddleware() {
	s.App.Use(recover.New())
	s.App.Use(cors.New(cors.Config{
		AllowOrigins: s.Config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Correlation-ID",
	}))
	s.App.Use(middleware.RequestLogging())

	prometheus := fiberprometheus.New("twitter-clone-api")
	prometheus.RegisterAt(s.App, "/metrics")
	s.App.Use(prometheus.Middleware)

	if s.Config.Env != "test" {
		s.App.Use("/api", middleware.RateLimit(300, time.Minute))
	}
}

func (s *Server) setupRoutes() {
	s.App.Get("/health", s.handleHealth)
	s.App.Get("/swagger/*", swagger.HandlerDefault)

	s.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	s.App.Get("/ws/feed", websocket.New(func(conn *websocket.Conn) {
		s.Hub.Register(conn)
	}))

	api := s.App.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", s.handleSignup)
	auth.Post("/login", s.handleLogin)

	authed := middleware.RequireAuth(s.Auth)

	users := api.Group("/users")
	users.Post("/", s.handleSignup)
	users.Get("/search", s.handleSearchUsers)
	users.Get("/check-username", s.handleCheckUsername)
	users.Get("/check-email", s.handleCheckEmail)
	users.Get("/:username", s.handleGetUser)
	users.Put("/:username", authed, s.handleUpdateUser)
	users.Delete("/:username", authed, s.handleDeleteUser)
	users.Post("/:username/follow/:target", authed, s.handleFollow)
	users.Delete("/:username/follow/:target", authed, s.handleUnfollow)
	users.Get("/:username/is-following/:target", s.handleIsFollowing)
	users.Get("/:username/followers", s.handleGetFollowers)
	users.Get("/:username/following", s.handleGetFollowing)

	posts := api.Group("/posts")
	posts.Get("/search", s.handleSearchPosts)
	posts.Get("/trending", s.handleTrending)
	posts.Get("/hashtag/:hashtag", s.handleGetByHashtag)
	posts.Get("/user/:username", s.handleUserTimeline)
	posts.Get("/home/:username", s.handleHomeTimeline)
	posts.Post("/user/:username", authed, s.handleCreatePost)
	posts.Get("/:id", s.handleGetPost)
	posts.Put("/:id", authed, s.handleUpdatePost)
	posts.Delete("/:id", authed, s.handleDeletePost)
	posts.Get("/:id/replies", s.handleGetReplies)
	posts.Post("/:parentId/reply/:username", authed, s.handleCreateReply)
	posts.Post("/:originalPostId/repost/:username", authed, s.handleCreateRepost)
	posts.Post("/:id/like/:username", authed, s.handleLike)
	posts.Delete("/:id/like/:username", authed, s.handleUnlike)
}

// handleHealth godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
