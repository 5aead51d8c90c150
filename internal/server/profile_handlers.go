package server

import (
	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/profile/:username - the author's posts newest
// first, their post count, and whether the viewer follows them. Anonymous
// viewers always see following=false.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	var author *models.User
	posts, page, err := s.paginatePosts(pageNumber(c), func(limit, offset int) ([]*models.Post, int64, error) {
		a, p, total, listErr := s.postService.ListByAuthor(c.Context(), username, limit, offset)
		if listErr != nil {
			return nil, 0, listErr
		}
		author = a
		return p, total, nil
	})
	if err != nil {
		return respondWithAppError(c, err)
	}

	following, err := s.followService.IsFollowing(c.Context(), viewerID(c), author.ID)
	if err != nil {
		return respondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"author":     author,
		"posts":      posts,
		"page":       page,
		"post_count": page.Total,
		"following":  following,
	})
}

// FollowAuthor handles POST /api/profile/:username/follow. Following
// yourself or an author you already follow changes nothing; either way the
// response is a redirect back to the profile.
func (s *Server) FollowAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	author, err := s.followService.Follow(c.Context(), userID, username)
	if err != nil {
		return respondWithAppError(c, err)
	}

	return seeOther(c, "/api/profile/"+author.Username)
}

// UnfollowAuthor handles POST /api/profile/:username/unfollow. Removing an
// absent subscription is a no-op.
func (s *Server) UnfollowAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	author, err := s.followService.Unfollow(c.Context(), userID, username)
	if err != nil {
		return respondWithAppError(c, err)
	}

	return seeOther(c, "/api/profile/"+author.Username)
}
