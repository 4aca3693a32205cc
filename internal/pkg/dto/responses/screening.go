package responses

// ScreeningState is the per-patient eligibility snapshot the portals use to
// gate questionnaire entry points.
type ScreeningState struct {
	PatientID        string `json:"patient_id"`
	Screened         bool   `json:"screened"`
	LatestResponseID string `json:"latest_response_id,omitempty"`
	LatestTotalScore *int   `json:"latest_total_score,omitempty"`
	FollowUpEligible bool   `json:"follow_up_eligible"`
}
