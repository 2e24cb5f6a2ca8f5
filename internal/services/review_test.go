package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"curiocart/internal/models"
)

// fakeReviewStorage is an in-memory ReviewStorage mirroring the repository's
// contract: approve is an idempotent $set, delete of a missing id succeeds.
type fakeReviewStorage struct {
	reviews map[string]*models.Review
}

func newFakeReviewStorage() *fakeReviewStorage {
	return &fakeReviewStorage{reviews: make(map[string]*models.Review)}
}

func (f *fakeReviewStorage) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	review.ID = primitive.NewObjectID()
	review.Approved = false
	stored := *review
	f.reviews[review.ID.Hex()] = &stored
	return review, nil
}

func (f *fakeReviewStorage) List(ctx context.Context, approvedOnly bool) ([]*models.Review, error) {
	out := []*models.Review{}
	for _, r := range f.reviews {
		if approvedOnly && !r.Approved {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeReviewStorage) Approve(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.ErrReviewNotFound
	}
	if r, ok := f.reviews[id]; ok {
		r.Approved = true
	}
	return nil
}

func (f *fakeReviewStorage) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

func TestReviewModerationRoundTrip(t *testing.T) {
	svc := NewReviewService(discardLogger(), newFakeReviewStorage())
	ctx := context.Background()

	review, err := svc.Submit(ctx, &models.ReviewCreateRequest{
		Username: "visitor",
		Content:  "lovely shop",
	})
	require.NoError(t, err)
	assert.False(t, review.Approved)

	// Pending: visible to moderation, hidden from the public page.
	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Approved)

	approved, err := svc.ListApproved(ctx)
	require.NoError(t, err)
	assert.Empty(t, approved)

	// Approve flips visibility.
	require.NoError(t, svc.Approve(ctx, review.ID.Hex()))

	approved, err = svc.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "visitor", approved[0].Username)

	// Approving again is a no-op success.
	require.NoError(t, svc.Approve(ctx, review.ID.Hex()))

	// Delete is terminal: gone from both views.
	require.NoError(t, svc.Delete(ctx, review.ID.Hex()))

	all, err = svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	approved, err = svc.ListApproved(ctx)
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestReviewSubmitValidation(t *testing.T) {
	svc := NewReviewService(discardLogger(), newFakeReviewStorage())

	_, err := svc.Submit(context.Background(), &models.ReviewCreateRequest{Username: "", Content: "x"})
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
}

func TestReviewDeleteMissingIDSucceeds(t *testing.T) {
	svc := NewReviewService(discardLogger(), newFakeReviewStorage())
	ctx := context.Background()

	assert.NoError(t, svc.Delete(ctx, primitive.NewObjectID().Hex()))
	// A malformed id is treated the same as a missing one.
	assert.NoError(t, svc.Delete(ctx, "not-a-hex-id"))
	assert.NoError(t, svc.Approve(ctx, "not-a-hex-id"))
}
