package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"curiocart/internal/models"
)

// CatalogService owns catalogue browsing and product creation.
type CatalogService struct {
	log     *slog.Logger
	storage ProductStorage
	images  *ImageService
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(log *slog.Logger, storage ProductStorage, images *ImageService) *CatalogService {
	return &CatalogService{
		log:     log,
		storage: storage,
		images:  images,
	}
}

// ListProducts returns the catalogue, filtered to one category unless the
// filter is empty or the "All" sentinel. An empty result is an empty slice.
func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]*models.Product, error) {
	if category == models.CategoryAll {
		category = ""
	}
	return s.storage.List(ctx, category)
}

// GetProduct returns a single product or models.ErrProductNotFound.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.storage.GetByID(ctx, id)
}

// CreateProduct validates the form, stores the image, and persists the
// product referencing the stored path. It returns models.ErrMissingFile when
// no file was supplied and persists nothing in that case. The call is
// synchronous: it does not return success until both the file write and the
// database insert have been acknowledged.
func (s *CatalogService) CreateProduct(ctx context.Context, req *models.ProductCreateRequest, file io.Reader, filename string) (*models.Product, error) {
	if file == nil {
		return nil, models.ErrMissingFile
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.images.Store(ctx, file, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to store product image: %w", err)
	}

	product := &models.Product{
		Name:     req.Name,
		Details:  req.Details,
		Category: req.Category,
		Image:    stored.Path,
		Price:    req.Price,
	}

	created, err := s.storage.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info("product created",
		"id", created.ID.Hex(),
		"name", created.Name,
		"category", created.Category,
	)
	return created, nil
}
