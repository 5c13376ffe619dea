package server

import (
	"github.com/HarminderDhillon/twitter-clone/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// paginationParams reads the zero-based page index and page size from
// query parameters, falling back to the defaults the API documents.
func paginationParams(c *fiber.Ctx) (page, size int) {
	page = c.QueryInt("page", 0)
	size = c.QueryInt("size", 20)
	return page, size
}

// uuidParam parses a UUID path parameter, reporting a validation error
// on malformed input.
func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, models.NewValidationError("Invalid id: must be a UUID")
	}
	return id, nil
}

// fail writes the error envelope with the status derived from the
// error's application code.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
