package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Questionnaire is the administrative unit the screening engine reads.
// Retired questionnaires are tombstoned via DeletedAt, never removed, so
// historical responses stay resolvable.
type Questionnaire struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
	DeletedAt   *time.Time         `bson:"deletedAt,omitempty" json:"deleted_at,omitempty"`
}
