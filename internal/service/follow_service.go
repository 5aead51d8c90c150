// Package service implements the application's business rules on top of the
// repository layer.
package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/observability"
	"yatube/internal/repository"
)

// FollowService resolves follow edges and the per-viewer feed.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
		postRepo:   postRepo,
	}
}

// IsFollowing reports whether viewer follows the author. An anonymous
// viewer (ID 0) never follows anyone; the store is not consulted.
func (s *FollowService) IsFollowing(ctx context.Context, viewerID, authorID uint) (bool, error) {
	if viewerID == 0 || viewerID == authorID {
		return false, nil
	}
	return s.followRepo.Exists(ctx, viewerID, authorID)
}

// Follow creates the (viewer, author) edge. Following yourself and
// following an author twice are both no-ops, not errors, so double
// submissions never fail and never duplicate the edge.
func (s *FollowService) Follow(ctx context.Context, viewerID uint, username string) (*models.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if viewerID == author.ID {
		observability.FollowOperations.WithLabelValues("follow", "self").Inc()
		return author, nil
	}

	exists, err := s.followRepo.Exists(ctx, viewerID, author.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		observability.FollowOperations.WithLabelValues("follow", "noop").Inc()
		return author, nil
	}

	if err := s.followRepo.Create(ctx, viewerID, author.ID); err != nil {
		return nil, err
	}
	observability.FollowOperations.WithLabelValues("follow", "created").Inc()
	return author, nil
}

// Unfollow removes the (viewer, author) edge if present; removing an
// absent edge is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, viewerID uint, username string) (*models.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	exists, err := s.followRepo.Exists(ctx, viewerID, author.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		observability.FollowOperations.WithLabelValues("unfollow", "noop").Inc()
		return author, nil
	}

	if err := s.followRepo.Delete(ctx, viewerID, author.ID); err != nil {
		return nil, err
	}
	observability.FollowOperations.WithLabelValues("unfollow", "deleted").Inc()
	return author, nil
}

// Feed returns posts by authors the viewer follows, newest first, with the
// total for pagination. Anonymous viewers get an empty feed.
func (s *FollowService) Feed(ctx context.Context, viewerID uint, limit, offset int) ([]*models.Post, int64, error) {
	if viewerID == 0 {
		return nil, 0, nil
	}

	total, err := s.postRepo.CountFollowed(ctx, viewerID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, nil
	}

	posts, err := s.postRepo.ListFollowed(ctx, viewerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Authors returns the users the viewer follows.
func (s *FollowService) Authors(ctx context.Context, viewerID uint) ([]models.User, error) {
	if viewerID == 0 {
		return nil, nil
	}
	return s.followRepo.ListAuthors(ctx, viewerID)
}
