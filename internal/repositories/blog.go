package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"curiocart/internal/database"
	"curiocart/internal/models"
)

// BlogRepository handles blog post persistence.
type BlogRepository struct {
	col *mongo.Collection
}

// NewBlogRepository creates a new blog repository.
func NewBlogRepository(db *database.DB) *BlogRepository {
	return &BlogRepository{col: db.Collection(database.CollectionBlogs)}
}

// Create inserts a post, stamping the creation time server-side.
func (r *BlogRepository) Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	res, err := r.col.InsertOne(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return post, nil
}

// List returns all posts in store-natural (insertion) order.
func (r *BlogRepository) List(ctx context.Context) ([]*models.BlogPost, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}
	return posts, nil
}
