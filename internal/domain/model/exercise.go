package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single log entry. Creator is set at insert time and never
// changes afterwards.
type Exercise struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Description string             `json:"description" bson:"description"`
	Duration    float64            `json:"duration" bson:"duration"`
	Date        time.Time          `json:"date" bson:"date"`
	Creator     primitive.ObjectID `json:"creator" bson:"creator"`
}
