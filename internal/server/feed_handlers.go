package server

import (
	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowIndex handles GET /api/follow - posts by authors the viewer follows,
// newest first, paginated. A viewer following nobody gets an empty page.
func (s *Server) FollowIndex(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	posts, page, err := s.paginatePosts(pageNumber(c), func(limit, offset int) ([]*models.Post, int64, error) {
		return s.followService.Feed(c.Context(), userID, limit, offset)
	})
	if err != nil {
		return respondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts": posts,
		"page":  page,
	})
}
