package services

import (
	"context"
	"log/slog"

	"curiocart/internal/models"
)

// BlogService owns blog post creation and listing.
type BlogService struct {
	log     *slog.Logger
	storage BlogStorage
}

// NewBlogService creates a new blog service.
func NewBlogService(log *slog.Logger, storage BlogStorage) *BlogService {
	return &BlogService{
		log:     log,
		storage: storage,
	}
}

// CreatePost creates a post; the store stamps the creation time.
func (s *BlogService) CreatePost(ctx context.Context, req *models.BlogCreateRequest) (*models.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := s.storage.Create(ctx, &models.BlogPost{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("blog post created", "id", post.ID.Hex(), "title", post.Title)
	return post, nil
}

// ListPosts returns all posts in store-natural order.
func (s *BlogService) ListPosts(ctx context.Context) ([]*models.BlogPost, error) {
	return s.storage.List(ctx)
}
