package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is a visitor-submitted community review. It starts unapproved and
// only shows on the public page once an owner approves it.
type Review struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Content  string             `bson:"content" json:"content"`
	Approved bool               `bson:"approved" json:"approved"`
}
