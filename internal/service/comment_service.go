package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/repository"
	"yatube/internal/validation"
)

// CommentService provides comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// AddCommentInput carries the fields for a new comment.
type AddCommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment creates a comment under the given post. The post must exist;
// an empty text is a validation failure and creates nothing.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}
	if err := validation.Text("Text", in.Text); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   in.Text,
		PostID: in.PostID,
		UserID: in.UserID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns a post's comments in insertion order.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.commentRepo.ListByPostID(ctx, postID)
}
