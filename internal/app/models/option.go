package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Option is an answer choice. Value is a small integer (typically 0 or 1)
// doubling as raw score contribution and branching discriminator.
// ConditionalSubQuestionIDs is an override edge list: the questions it names
// become visible when this option is selected, whether or not they are
// structural children of the owning question.
type Option struct {
	ID                        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	QuestionID                primitive.ObjectID   `bson:"questionId" json:"question_id"`
	Text                      string               `bson:"text" json:"text"`
	Value                     int                  `bson:"value" json:"value"`
	Sequence                  int                  `bson:"sequence" json:"sequence"`
	ConditionalSubQuestionIDs []primitive.ObjectID `bson:"conditionalSubQuestionIds,omitempty" json:"conditional_sub_question_ids,omitempty"`
	CreatedAt                 time.Time            `bson:"createdAt" json:"created_at"`
	UpdatedAt                 time.Time            `bson:"updatedAt" json:"updated_at"`
	DeletedAt                 *time.Time           `bson:"deletedAt,omitempty" json:"deleted_at,omitempty"`
}
