package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is one catalogue item. Products are created through the upload flow
// and never updated or deleted in-app.
type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Details  string             `bson:"details" json:"details"`
	Category string             `bson:"category" json:"category"`
	// Image is the public path of the stored upload, relative to the site root.
	Image string  `bson:"image" json:"image"`
	Price float64 `bson:"price" json:"price"`
}

// CategoryAll is the sentinel category meaning "no filter".
const CategoryAll = "All"
