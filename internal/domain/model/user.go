package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User owns an append-only log of exercise entry references.
type User struct {
	ID       primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Username string               `json:"username" bson:"username"`
	Log      []primitive.ObjectID `json:"log" bson:"log"`
}
