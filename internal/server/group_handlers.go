package server

import (
	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetGroups handles GET /api/groups - the group directory.
func (s *Server) GetGroups(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return respondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"groups": groups,
	})
}

// GetGroupPosts handles GET /api/groups/:slug - the group's posts, newest
// first, paginated. An unknown slug is a 404.
func (s *Server) GetGroupPosts(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var group *models.Group
	posts, page, err := s.paginatePosts(pageNumber(c), func(limit, offset int) ([]*models.Post, int64, error) {
		g, p, total, listErr := s.postService.ListByGroup(c.Context(), slug, limit, offset)
		if listErr != nil {
			return nil, 0, listErr
		}
		group = g
		return p, total, nil
	})
	if err != nil {
		return respondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"group": group,
		"posts": posts,
		"page":  page,
	})
}
