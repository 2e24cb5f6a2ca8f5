package services

import (
	"context"
	"io"

	"curiocart/internal/models"
)

// ProductStorage is the persistence surface the catalogue needs. The mongo
// repository satisfies it; tests substitute mocks.
type ProductStorage interface {
	List(ctx context.Context, category string) ([]*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
}

// ReviewStorage is the persistence surface for review moderation.
type ReviewStorage interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	List(ctx context.Context, approvedOnly bool) ([]*models.Review, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// BlogStorage is the persistence surface for the blog.
type BlogStorage interface {
	Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	List(ctx context.Context) ([]*models.BlogPost, error)
}

// CatalogServiceInterface defines the interface handlers use for catalogue
// operations.
type CatalogServiceInterface interface {
	ListProducts(ctx context.Context, category string) ([]*models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.ProductCreateRequest, file io.Reader, filename string) (*models.Product, error)
}

// ReviewServiceInterface defines the interface handlers use for reviews.
type ReviewServiceInterface interface {
	Submit(ctx context.Context, req *models.ReviewCreateRequest) (*models.Review, error)
	ListApproved(ctx context.Context) ([]*models.Review, error)
	ListAll(ctx context.Context) ([]*models.Review, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// BlogServiceInterface defines the interface handlers use for the blog.
type BlogServiceInterface interface {
	CreatePost(ctx context.Context, req *models.BlogCreateRequest) (*models.BlogPost, error)
	ListPosts(ctx context.Context) ([]*models.BlogPost, error)
}
