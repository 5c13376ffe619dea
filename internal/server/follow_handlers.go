package server

import (
	"strings"

	"github.com/HarminderDhillon/twitter-clone/internal/middleware"
	"github.com/HarminderDhillon/twitter-clone/internal/models"

	"github.com/gofiber/fiber/v2"
)

// handleFollow godoc
// @Summary Follow a user
// @Tags follows
// @Param username path string true "Follower username"
// @Param target path string true "Username to follow"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/users/{username}/follow/{target} [post]
func (s *Server) handleFollow(c *fiber.Ctx) error {
	follower := c.Params("username")
	if !strings.EqualFold(middleware.Username(c), follower) {
		return fail(c, models.NewUnauthorizedError("You can only manage your own follows"))
	}
	if err := s.Follows.Follow(c.UserContext(), follower, c.Params("target")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// handleUnfollow godoc
// @Summary Unfollow a user
// @Tags follows
// @Param username path string true "Follower username"
// @Param target path string true "Username to unfollow"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/users/{username}/follow/{target} [delete]
func (s *Server) handleUnfollow(c *fiber.Ctx) error {
	follower := c.Params("username")
	if !strings.EqualFold(middleware.Username(c), follower) {
		return fail(c, models.NewUnauthorizedError("You can only manage your own follows"))
	}
	if err := s.Follows.Unfollow(c.UserContext(), follower, c.Params("target")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// handleIsFollowing godoc
// @Summary Check whether one user follows another
// @Tags follows
// @Produce json
// @Param username path string true "Follower username"
// @Param target path string true "Target username"
// @Success 200 {object} map[string]bool
// @Router /api/users/{username}/is-following/{target} [get]
func (s *Server) handleIsFollowing(c *fiber.Ctx) error {
	following, err := s.Follows.IsFollowing(c.UserContext(), c.Params("username"), c.Params("target"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"following": following})
}

// handleGetFollowers godoc
// @Summary List a user's followers
// @Tags follows
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page index (zero-based)"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[dto.UserSummary]
// @Router /api/users/{username}/followers [get]
func (s *Server) handleGetFollowers(c *fiber.Ctx) error {
	page, size := paginationParams(c)
	followers, err := s.Follows.GetFollowers(c.UserContext(), c.Params("username"), page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(followers)
}

// handleGetFollowing godoc
// @Summary List the users a user follows
// @Tags follows
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page index (zero-based)"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[dto.UserSummary]
// @Router /api/users/{username}/following [get]
func (s *Server) handleGetFollowing(c *fiber.Ctx) error {
	page, size := paginationParams(c)
	following, err := s.Follows.GetFollowing(c.UserContext(), c.Params("username"), page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(following)
}
