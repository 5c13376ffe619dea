package server

import (
	"strings"

	"github.com/HarminderDhillon/twitter-clone/internal/middleware"
	"github.com/HarminderDhillon/twitter-clone/internal/models"
	"github.com/HarminderDhillon/twitter-clone/internal/service"

	"github.com/gofiber/fiber/v2"
)

// requireSelf checks that the authenticated user matches the username
// path parameter.
func requireSelf(c *fiber.Ctx, param string) (string, error) {
	username := c.Params(param)
	if !strings.EqualFold(middleware.Username(c), username) {
		return "", models.NewUnauthorizedError("You can only act as yourself")
	}
	return username, nil
}

// handleGetPost godoc
// @Summary Get a post by id
// @Tags posts
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} dto.PostDto
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id} [get]
func (s *Server) handleGetPost(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return fail(c, err)
	}
	post, err := s.Posts.GetPost(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(post)
}

// handleCreatePost godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param username path string true "Author username"
// @Param body body service.CreatePostInput true "Post body"
// @Success 201 {object} dto.PostDto
// @Failure 400 {object} map[string]string
// @Router /api/posts/user/{username} [post]
func (s *Server) handleCreatePost(c *fiber.Ctx) error {
	username, err := requireSelf(c, "username")
	if err != nil {
		return fail(c, err)
	}
	var in service.CreatePostInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}
	post, err := s.Posts.CreatePost(c.UserContext(), username, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// handleCreateReply godoc
// @Summary Reply to a post
// @Tags posts
// @Accept json
// @Produce json
// @Param parentId path string true "Parent post id"
// @Param username path string true "Author username"
// @Param body body service.CreatePostInput true "Reply body"
// @Success 201 {object} dto.PostDto
// @Failure 404 {object} map[string]string
// @Router /api/posts/{parentId}/reply/{username} [post]
func (s *Server) handleCreateReply(c *fiber.Ctx) error {
	username, err := requireSelf(c, "username")
	if err != nil {
		return fail(c, err)
	}
	parentID, err := uuidParam(c, "parentId")
	if err != nil {
		return fail(c, err)
	}
	var in service.CreatePostInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}
	reply, err := s.Posts.CreateReply(c.UserContext(), parentID, username, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reply)
}

// handleCreateRepost godoc
// @Summary Repost a post, optionally with a quote
// @Tags posts
// @Accept json
// @Produce json
// @Param originalPostId path string true "Original post id"
// @Param username path string true "Author username"
// @Param body body service.CreatePostInput false "Optional quote"
// @Success 201 {object} dto.PostDto
// @Failure 404 {object} map[string]string
// @Router /api/posts/{originalPostId}/repost/{username} [post]
func (s *Server) handleCreateRepost(c *fiber.Ctx) error {
	username, err := requireSelf(c, "username")
	if err != nil {
		return fail(c, err)
	}
	originalID, err := uuidParam(c, "originalPostId")
	if err != nil {
		return fail(c, err)
	}
	var in service.CreatePostInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return fail(c, models.NewValidationError("Invalid request body"))
		}
	}
	repost, err := s.Posts.CreateRepost(c.UserContext(), originalID, username, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(repost)
}

// handleUpdatePost godoc
// @Summary Edit a post's content
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post id"
// @Param body body service.CreatePostInput true "New content"
// @Success 200 {object} dto.PostDto
// @Failure 401 {object} map[string]string
// @Router /api/posts/{id} [put]
func (s *Server) handleUpdatePost(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in service.CreatePostInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}
	post, err := s.Posts.UpdatePost(c.UserContext(), id, middleware.Username(c), in.Content)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(post)
}

// handleDeletePost godoc
// @Summary Delete a post
// @Tags posts
// @Param id path string true "Post id"
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /api/posts/{id} [delete]
func (s *Server) handleDeletePost(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := s.Posts.DeletePost(c.UserContext(), id, middleware.Username(c)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// handleLike godoc
// @Summary Like a post
// @Tags posts
// @Param id path string true "Post id"
// @Param username path string true "Username"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id}/like/{username} [post]
func (s *Server) handleLike(c *fiber.Ctx) error {
	username, err := requireSelf(c, "username")
	if err != nil {
		return fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := s.Posts.Like(c.UserContext(), id, username); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// handleUnlike godoc
// @Summary Remove a like
// @Tags posts
// @Param id path string true "Post id"
// @Param username path string true "Username"
// @Success 204
// @Router /api/posts/{id}/like/{username} [delete]
func (s *Server) handleUnlike(c *fiber.Ctx) error {
	username, err := requireSelf(c, "username")
	if err != nil {
		return fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := s.Posts.Unlike(c.UserContext(), id, username); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// handleUserTimeline godoc
// @Summary Get a user's own posts, newest first
// @Tags timelines
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page index (zero-based)"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[dto.PostDto]
// @Router /api/posts/user/{username} [get]
func (s *Server) handleUserTimeline(c *fiber.Ctx) error {
	page, size := paginationParams(c)
	posts, err := s.Posts.GetUserTimeline(c.UserContext(), c.Params("username"), page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// handleHomeTimeline godoc
// @Summary Get the posts of everyone a user follows, newest first
// @Tags timelines
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page index (zero-based)"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[dto.PostDto]
// @Router /api/posts/home/{username} [get]
func (s *Server) handleHomeTimeline(c *fiber.Ctx) error {
	page, size := paginationParams(c)
	posts, err := s.Posts.GetHomeTimeline(c.UserContext(), c.Params("username"), page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// handleSearchPosts godoc
// @Summary Search posts by content
// @Tags posts
// @Produce json
// @Param query query string true "Search text"
// @Param page query int false "Page index (zero-based)"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[dto.PostDto]
// @Router /api/posts/search [get]
func (s *Server) handleSearchPosts(c *fiber.Ctx) error {
	page, size := paginationParams(c)
	posts, err := s.Posts.Search(c.UserContext(), c.Query("query"), page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// handleTrending godoc
// @Summary Get trending posts ranked by engagement
// @Tags posts
// @Produce json
// @Param page query int false "Page index (zero-based)"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[dto.PostDto]
// @Router /api/posts/trending [get]
func (s *Server) handleTrending(c *fiber.Ctx) error {
	page, size := paginationParams(c)
	posts, err := s.Posts.GetTrending(c.UserContext(), page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// handleGetByHashtag godoc
// @Summary Get posts carrying a hashtag
// @Tags posts
// @Produce json
// @Param hashtag path string true "Hashtag without the # prefix"
// @Param page query int false "Page index (zero-based)"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[dto.PostDto]
// @Router /api/posts/hashtag/{hashtag} [get]
func (s *Server) handleGetByHashtag(c *fiber.Ctx) error {
	page, size := paginationParams(c)
	posts, err := s.Posts.GetByHashtag(c.UserContext(), c.Params("hashtag"), page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// handleGetReplies godoc
// @Summary Get the direct replies to a post
// @Tags posts
// @Produce json
// @Param id path string true "Parent post id"
// @Param page query int false "Page index (zero-based)"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[dto.PostDto]
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id}/replies [get]
func (s *Server) handleGetReplies(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return fail(c, err)
	}
	page, size := paginationParams(c)
	posts, err := s.Posts.GetReplies(c.UserContext(), id, page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}
