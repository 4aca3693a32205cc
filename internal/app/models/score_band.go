package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScoreBand maps an inclusive total-score range to human-readable
// interpretation text. Reporting only; the follow-up eligibility gate does
// not consult bands.
type ScoreBand struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuestionnaireID primitive.ObjectID `bson:"questionnaireId" json:"questionnaire_id"`
	MinScore        int                `bson:"minScore" json:"min_score"`
	MaxScore        int                `bson:"maxScore" json:"max_score"`
	Interpretation  string             `bson:"interpretation" json:"interpretation"`
	Recommendation  string             `bson:"recommendation,omitempty" json:"recommendation,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updated_at"`
	DeletedAt       *time.Time         `bson:"deletedAt,omitempty" json:"deleted_at,omitempty"`
}
