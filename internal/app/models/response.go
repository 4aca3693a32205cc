package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response is one questionnaire submission. History is append-only: a
// correction is a brand-new Response, existing documents are never updated.
// Answers are embedded because they are always read together with the
// response and never queried on their own.
type Response struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuestionnaireID  primitive.ObjectID `bson:"questionnaireId" json:"questionnaire_id"`
	PatientID        string             `bson:"patientId,omitempty" json:"patient_id,omitempty"`
	State            string             `bson:"state" json:"state"`
	TotalScore       int                `bson:"totalScore" json:"total_score"`
	Answers          []Answer           `bson:"answers" json:"answers"`
	GroupScores      []GroupScore       `bson:"groupScores" json:"group_scores"`
	SkippedAnswerIDs []string           `bson:"skippedAnswerIds,omitempty" json:"skipped_answer_ids,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"created_at"`
}

// Answer captures the resolved score at submission time. ResolvedScore is
// immutable once recorded, even if the referenced option's value is edited
// later.
type Answer struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	QuestionID    primitive.ObjectID  `bson:"questionId" json:"question_id"`
	OptionID      *primitive.ObjectID `bson:"optionId,omitempty" json:"option_id,omitempty"`
	TextAnswer    *string             `bson:"textAnswer,omitempty" json:"text_answer,omitempty"`
	NumericAnswer *float64            `bson:"numericAnswer,omitempty" json:"numeric_answer,omitempty"`
	ResolvedScore int                 `bson:"resolvedScore" json:"resolved_score"`
	NestedLevel   int                 `bson:"nestedLevel,omitempty" json:"nested_level,omitempty"`
}

// GroupScore is the per-group contribution summed into TotalScore.
type GroupScore struct {
	GroupKey   string             `bson:"groupKey" json:"group_key"`
	QuestionID primitive.ObjectID `bson:"questionId" json:"question_id"`
	Method     string             `bson:"method" json:"method"`
	Score      int                `bson:"score" json:"score"`
}
