package service

import (
	"context"

	"yatube/internal/cache"
	"yatube/internal/models"
	"yatube/internal/repository"
	"yatube/internal/validation"
)

// PostService provides post listing and authoring business logic.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

// CreatePostInput carries the fields for a new post. The author is taken
// from the authenticated identity, never from client input.
type CreatePostInput struct {
	UserID  uint
	Text    string
	GroupID *uint
	Image   string
}

// UpdatePostInput carries the fields for editing an existing post.
type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Text    string
	GroupID *uint
	Image   string
}

// postListing is the cached shape of the front page: one page of posts plus
// the total for pagination metadata.
type postListing struct {
	Posts []*models.Post `json:"posts"`
	Total int64          `json:"total"`
}

// NewPostService returns a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// ListAll returns every post newest-first. The first page is served through
// a short-TTL read-through cache; writes do not invalidate it, so a stale
// front page may persist until the TTL expires.
func (s *PostService) ListAll(ctx context.Context, limit, offset int) ([]*models.Post, int64, error) {
	if offset == 0 {
		var listing postListing
		err := cache.Aside(ctx, cache.IndexKey(), &listing, cache.IndexTTL, func() error {
			total, fetchErr := s.postRepo.Count(ctx)
			if fetchErr != nil {
				return fetchErr
			}
			posts, fetchErr := s.postRepo.List(ctx, limit, offset)
			if fetchErr != nil {
				return fetchErr
			}
			listing = postListing{Posts: posts, Total: total}
			return nil
		})
		if err != nil {
			return nil, 0, err
		}
		return listing.Posts, listing.Total, nil
	}

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	posts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListByGroup returns the group and its posts newest-first.
// Fails with NOT_FOUND if the slug does not resolve.
func (s *PostService) ListByGroup(ctx context.Context, slug string, limit, offset int) (*models.Group, []*models.Post, int64, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, 0, err
	}

	total, err := s.postRepo.CountByGroupID(ctx, group.ID)
	if err != nil {
		return nil, nil, 0, err
	}
	posts, err := s.postRepo.ListByGroupID(ctx, group.ID, limit, offset)
	if err != nil {
		return nil, nil, 0, err
	}
	return group, posts, total, nil
}

// ListByAuthor returns the author and their posts newest-first.
// Fails with NOT_FOUND if the username does not resolve.
func (s *PostService) ListByAuthor(ctx context.Context, username string, limit, offset int) (*models.User, []*models.Post, int64, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, 0, err
	}

	total, err := s.postRepo.CountByUserID(ctx, author.ID)
	if err != nil {
		return nil, nil, 0, err
	}
	posts, err := s.postRepo.ListByUserID(ctx, author.ID, limit, offset)
	if err != nil {
		return nil, nil, 0, err
	}
	return author, posts, total, nil
}

// GetPost returns a single post with author and group loaded.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// CreatePost validates and stores a new post. An empty text leaves the
// store unchanged. The creation timestamp is assigned by the store.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.Text("Text", in.Text); err != nil {
		return nil, err
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			if models.IsCode(err, "NOT_FOUND") {
				return nil, models.NewValidationError("Unknown group")
			}
			return nil, err
		}
	}

	post := &models.Post{
		Text:    in.Text,
		Image:   in.Image,
		UserID:  in.UserID,
		GroupID: in.GroupID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost edits a post's text, group, and image in place. Only the
// author may edit; anyone else gets UNAUTHORIZED, which the transport
// layer converts into a silent redirect to the post's detail page.
// The publication date is never altered.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only edit your own posts")
	}

	if err := validation.Text("Text", in.Text); err != nil {
		return nil, err
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			if models.IsCode(err, "NOT_FOUND") {
				return nil, models.NewValidationError("Unknown group")
			}
			return nil, err
		}
	}

	post.Text = in.Text
	post.GroupID = in.GroupID
	post.Image = in.Image

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID)
}

// DeletePost removes a post; only the author may delete.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}
