package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question is a node in the question bank. A nil ParentQuestionID marks a
// top-level question. GroupKey clusters structurally related top-level
// questions for unified scoring; when nil, the question is its own group.
type Question struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	QuestionnaireID  primitive.ObjectID  `bson:"questionnaireId" json:"questionnaire_id"`
	ParentQuestionID *primitive.ObjectID `bson:"parentQuestionId,omitempty" json:"parent_question_id,omitempty"`
	GroupKey         *int                `bson:"groupKey,omitempty" json:"group_key,omitempty"`
	Prompt           map[string]string   `bson:"prompt" json:"prompt"`
	Required         bool                `bson:"required" json:"required"`
	Status           string              `bson:"status" json:"status"`
	Sequence         int                 `bson:"sequence" json:"sequence"`
	ScoringMethod    string              `bson:"scoringMethod,omitempty" json:"scoring_method,omitempty"`
	ScoringConfig    ScoringConfig       `bson:"scoringConfig,omitempty" json:"scoring_config,omitempty"`
	CreatedAt        time.Time           `bson:"createdAt" json:"created_at"`
	UpdatedAt        time.Time           `bson:"updatedAt" json:"updated_at"`
	DeletedAt        *time.Time          `bson:"deletedAt,omitempty" json:"deleted_at,omitempty"`
}

// ScoringConfig is the per-question scoring parameter blob. It is carried as
// an explicit value object into every strategy call, never as ambient state.
type ScoringConfig struct {
	Threshold           *float64           `bson:"threshold,omitempty" json:"threshold,omitempty"`
	AboveThresholdScore *int               `bson:"aboveThresholdScore,omitempty" json:"above_threshold_score,omitempty"`
	BelowThresholdScore *int               `bson:"belowThresholdScore,omitempty" json:"below_threshold_score,omitempty"`
	Weights             map[string]float64 `bson:"weights,omitempty" json:"weights,omitempty"`
	IncludeMainQuestion bool               `bson:"includeMainQuestion,omitempty" json:"include_main_question,omitempty"`
	TieBreakHigh        bool               `bson:"tieBreakHigh,omitempty" json:"tie_break_high,omitempty"`
}
