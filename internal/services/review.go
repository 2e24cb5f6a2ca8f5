package services

import (
	"context"
	"errors"
	"log/slog"

	"curiocart/internal/models"
)

// ReviewService owns review submission and moderation.
type ReviewService struct {
	log     *slog.Logger
	storage ReviewStorage
}

// NewReviewService creates a new review service.
func NewReviewService(log *slog.Logger, storage ReviewStorage) *ReviewService {
	return &ReviewService{
		log:     log,
		storage: storage,
	}
}

// Submit creates a review in the pending state.
func (s *ReviewService) Submit(ctx context.Context, req *models.ReviewCreateRequest) (*models.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	review, err := s.storage.Create(ctx, &models.Review{
		Username: req.Username,
		Content:  req.Content,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("review submitted", "id", review.ID.Hex(), "username", review.Username)
	return review, nil
}

// ListApproved returns the reviews visible on the public community page.
func (s *ReviewService) ListApproved(ctx context.Context) ([]*models.Review, error) {
	return s.storage.List(ctx, true)
}

// ListAll returns every review, for the moderation view.
func (s *ReviewService) ListAll(ctx context.Context) ([]*models.Review, error) {
	return s.storage.List(ctx, false)
}

// Approve marks a review approved. Approving an already-approved or missing
// review is a no-op success.
func (s *ReviewService) Approve(ctx context.Context, id string) error {
	err := s.storage.Approve(ctx, id)
	if errors.Is(err, models.ErrReviewNotFound) {
		return nil
	}
	return err
}

// Delete removes a review permanently. Deleting a nonexistent id is success.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	err := s.storage.Delete(ctx, id)
	if errors.Is(err, models.ErrReviewNotFound) {
		return nil
	}
	return err
}
