package server

import (
	"strings"

	"github.com/HarminderDhillon/twitter-clone/internal/middleware"
	"github.com/HarminderDhillon/twitter-clone/internal/models"
	"github.com/HarminderDhillon/twitter-clone/internal/service"

	"github.com/gofiber/fiber/v2"
)

// handleGetUser godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.UserDto
// @Failure 404 {object} map[string]string
// @Router /api/users/{username} [get]
func (s *Server) handleGetUser(c *fiber.Ctx) error {
	profile, err := s.Users.GetProfile(c.UserContext(), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}

// handleUpdateUser godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param body body service.UpdateProfileInput true "Profile fields"
// @Success 200 {object} dto.UserDto
// @Failure 401 {object} map[string]string
// @Router /api/users/{username} [put]
func (s *Server) handleUpdateUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if !strings.EqualFold(middleware.Username(c), username) {
		return fail(c, models.NewUnauthorizedError("You can only edit your own profile"))
	}

	var in service.UpdateProfileInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	profile, err := s.Users.UpdateProfile(c.UserContext(), username, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}

// handleDeleteUser godoc
// @Summary Delete the authenticated user's account
// @Tags users
// @Param username path string true "Username"
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /api/users/{username} [delete]
func (s *Server) handleDeleteUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if !strings.EqualFold(middleware.Username(c), username) {
		return fail(c, models.NewUnauthorizedError("You can only delete your own account"))
	}
	if err := s.Users.DeleteAccount(c.UserContext(), username); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// handleSearchUsers godoc
// @Summary Search users by username or display name
// @Tags users
// @Produce json
// @Param query query string true "Search text"
// @Success 200 {array} dto.UserSummary
// @Router /api/users/search [get]
func (s *Server) handleSearchUsers(c *fiber.Ctx) error {
	users, err := s.Users.Search(c.UserContext(), c.Query("query"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// handleCheckUsername godoc
// @Summary Check whether a username is available
// @Tags users
// @Produce json
// @Param username query string true "Username to check"
// @Success 200 {object} map[string]bool
// @Router /api/users/check-username [get]
func (s *Server) handleCheckUsername(c *fiber.Ctx) error {
	available, err := s.Users.CheckUsername(c.UserContext(), c.Query("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"available": available})
}

// handleCheckEmail godoc
// @Summary Check whether an email is available
// @Tags users
// @Produce json
// @Param email query string true "Email to check"
// @Success 200 {object} map[string]bool
// @Router /api/users/check-email [get]
func (s *Server) handleCheckEmail(c *fiber.Ctx) error {
	available, err := s.Users.CheckEmail(c.UserContext(), c.Query("email"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"available": available})
}
