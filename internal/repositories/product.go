package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"curiocart/internal/database"
	"curiocart/internal/models"
)

// ProductRepository handles product persistence.
type ProductRepository struct {
	col *mongo.Collection
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *database.DB) *ProductRepository {
	return &ProductRepository{col: db.Collection(database.CollectionProducts)}
}

// List returns all products, or only those in the given category when one is
// supplied. Ordering is store-natural; no sort is applied. The result is never
// nil.
func (r *ProductRepository) List(ctx context.Context, category string) ([]*models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []*models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product. A malformed or unknown id yields
// models.ErrProductNotFound.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrProductNotFound
	}

	product := &models.Product{}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return product, nil
}

// Create inserts a new product and returns it with the generated id set.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return product, nil
}
