package service

import (
	"context"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_AddComment_MissingPost(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}

	creates := 0
	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, _ *models.Comment) error {
		creates++
		return nil
	}

	svc := NewCommentService(commentRepo, postRepo)

	_, err := svc.AddComment(context.Background(), AddCommentInput{UserID: 1, PostID: 99, Text: "hi"})
	assertNotFoundError(t, err)
	assert.Zero(t, creates)
}

func TestCommentService_AddComment_EmptyTextWritesNothing(t *testing.T) {
	t.Parallel()

	creates := 0
	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, _ *models.Comment) error {
		creates++
		return nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo())

	_, err := svc.AddComment(context.Background(), AddCommentInput{UserID: 1, PostID: 5, Text: "   "})
	assertValidationError(t, err)
	assert.Zero(t, creates)
}

func TestCommentService_AddComment_Success(t *testing.T) {
	t.Parallel()

	var stored *models.Comment
	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 3
		stored = c
		return nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo())

	comment, err := svc.AddComment(context.Background(), AddCommentInput{UserID: 1, PostID: 5, Text: "nice"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), comment.ID)
	assert.Equal(t, uint(5), stored.PostID)
	assert.Equal(t, uint(1), stored.UserID)
	assert.Equal(t, "nice", stored.Text)
}
