package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PatientScreening is the coarse per-patient gate keyed by patient id.
// One document per patient, updated via a single atomic upsert;
// last-writer-wins is acceptable because the flag gates, it does not count.
type PatientScreening struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	PatientID        string              `bson:"patientId" json:"patient_id"`
	Screened         bool                `bson:"screened" json:"screened"`
	LatestResponseID *primitive.ObjectID `bson:"latestResponseId,omitempty" json:"latest_response_id,omitempty"`
	LatestTotalScore *int                `bson:"latestTotalScore,omitempty" json:"latest_total_score,omitempty"`
	FollowUpEligible bool                `bson:"followUpEligible" json:"follow_up_eligible"`
	UpdatedAt        time.Time           `bson:"updatedAt" json:"updated_at"`
}
