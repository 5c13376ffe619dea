package server

import (
	"github.com/HarminderDhillon/twitter-clone/internal/dto"
	"github.com/HarminderDhillon/twitter-clone/internal/models"
	"github.com/HarminderDhillon/twitter-clone/internal/service"

	"github.com/gofiber/fiber/v2"
)

// handleSignup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterInput true "Registration details"
// @Success 201 {object} dto.UserDto
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/auth/signup [post]
func (s *Server) handleSignup(c *fiber.Ctx) error {
	var in service.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.Auth.Register(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewUserDto(user, 0, 0))
}

// handleLogin godoc
// @Summary Log in and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginInput true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (s *Server) handleLogin(c *fiber.Ctx) error {
	var in service.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	token, user, err := s.Auth.Login(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  dto.NewUserSummary(user),
	})
}
