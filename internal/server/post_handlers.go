package server

import (
	"fmt"

	"yatube/internal/models"
	"yatube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// postBody is the write payload shared by create and edit.
type postBody struct {
	Text    string `json:"text"`
	GroupID *uint  `json:"group_id"`
	Image   string `json:"image"`
}

// GetPosts handles GET /api/posts - the front page, newest first, paginated.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, page, err := s.paginatePosts(pageNumber(c), func(limit, offset int) ([]*models.Post, int64, error) {
		return s.postService.ListAll(c.Context(), limit, offset)
	})
	if err != nil {
		return respondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts": posts,
		"page":  page,
	})
}

// GetPost handles GET /api/posts/:id - post detail with its comments and the
// author's total post count.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondWithAppError(c, err)
	}

	comments, err := s.commentService.ListComments(c.Context(), post.ID)
	if err != nil {
		return respondWithAppError(c, err)
	}

	authorPostCount, err := s.postRepo.CountByUserID(c.Context(), post.UserID)
	if err != nil {
		return respondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":              post,
		"comments":          comments,
		"author_post_count": authorPostCount,
	})
}

// CreatePost handles POST /api/posts. On success it redirects to the
// author's profile, mirroring the post/redirect/get flow of the web UI.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req postBody
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:  userID,
		Text:    req.Text,
		GroupID: req.GroupID,
		Image:   req.Image,
	})
	if err != nil {
		return respondWithAppError(c, err)
	}

	return seeOther(c, "/api/profile/"+post.User.Username)
}

// EditPost handles POST /api/posts/:id/edit. Only the author may edit; a
// non-author is not an error case, the request is silently redirected to the
// post's detail page with nothing changed. The publication date survives
// every edit.
func (s *Server) EditPost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postBody
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	detail := fmt.Sprintf("/api/posts/%d", id)

	_, err = s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:  userID,
		PostID:  id,
		Text:    req.Text,
		GroupID: req.GroupID,
		Image:   req.Image,
	})
	if err != nil {
		if models.IsCode(err, "UNAUTHORIZED") {
			return seeOther(c, detail)
		}
		return respondWithAppError(c, err)
	}

	return seeOther(c, detail)
}

// DeletePost handles DELETE /api/posts/:id. Author-only.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), userID, id); err != nil {
		return respondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
