package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"curiocart/internal/database"
	"curiocart/internal/models"
)

// ReviewRepository handles review persistence.
type ReviewRepository struct {
	col *mongo.Collection
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *database.DB) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(database.CollectionReviews)}
}

// Create inserts a review. New reviews always start unapproved.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	review.Approved = false
	res, err := r.col.InsertOne(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	return review, nil
}

// List returns every review. Pass approvedOnly to restrict to the public set.
func (r *ReviewRepository) List(ctx context.Context, approvedOnly bool) ([]*models.Review, error) {
	filter := bson.M{}
	if approvedOnly {
		filter["approved"] = true
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []*models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// Approve marks a review approved. Approving an already-approved review, or a
// missing id, succeeds: the update simply matches nothing new.
func (r *ReviewRepository) Approve(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrReviewNotFound
	}

	_, err = r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"approved": true}})
	if err != nil {
		return fmt.Errorf("failed to approve review %s: %w", id, err)
	}
	return nil
}

// Delete removes a review permanently. Deleting a nonexistent id is success.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrReviewNotFound
	}

	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete review %s: %w", id, err)
	}
	return nil
}
