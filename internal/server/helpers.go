package server

import (
	"errors"

	"yatube/internal/models"
	"yatube/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// viewerID returns the authenticated viewer's ID, or 0 for anonymous
// requests. OptionalAuth routes use it; AuthRequired routes can rely on the
// local being set.
func viewerID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// pageNumber extracts the 1-based page query parameter. Out-of-range values
// are clamped later against the result total, never rejected.
func pageNumber(c *fiber.Ctx) int {
	n := c.QueryInt("page", 1)
	if n < 1 {
		n = 1
	}
	return n
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// postFetchFn fetches one page of posts plus the total count.
type postFetchFn func(limit, offset int) ([]*models.Post, int64, error)

// paginatePosts runs fetch for the requested page, clamping the page number
// against the total. A request past the last page re-fetches the last page
// instead of returning an empty list.
func (s *Server) paginatePosts(number int, fetch postFetchFn) ([]*models.Post, pagination.Page, error) {
	size := s.config.PostsPerPage

	page := pagination.New(0, size, number)
	posts, total, err := fetch(page.Limit(), (number-1)*size)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	page = pagination.New(total, size, number)
	if page.Offset() != (number-1)*size {
		posts, _, err = fetch(page.Limit(), page.Offset())
		if err != nil {
			return nil, pagination.Page{}, err
		}
	}
	return posts, page, nil
}

// respondWithAppError maps an application error to the matching HTTP status.
func respondWithAppError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case "UNAUTHORIZED":
			return models.RespondWithError(c, fiber.StatusForbidden, appErr)
		case "CONFLICT":
			return models.RespondWithError(c, fiber.StatusConflict, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}

// seeOther issues the post/redirect/get response used after successful
// mutations: 303 with the canonical location of the affected resource.
func seeOther(c *fiber.Ctx, location string) error {
	return c.Redirect(location, fiber.StatusSeeOther)
}
