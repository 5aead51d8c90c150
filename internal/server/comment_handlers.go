package server

import (
	"fmt"

	"yatube/internal/models"
	"yatube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /api/posts/:id/comments. Valid or not, the client
// ends up back on the post's detail page: an empty comment simply creates
// nothing. A missing post is still a 404.
func (s *Server) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	detail := fmt.Sprintf("/api/posts/%d", id)

	_, err = s.commentService.AddComment(c.Context(), service.AddCommentInput{
		UserID: userID,
		PostID: id,
		Text:   req.Text,
	})
	if err != nil {
		if models.IsCode(err, "VALIDATION_ERROR") {
			return seeOther(c, detail)
		}
		return respondWithAppError(c, err)
	}

	return seeOther(c, detail)
}
