package contracts

import "context"

// ScreeningCompletedEvent is published after a primary screening response is
// scored, for downstream consumers (portal notifications, reporting).
type ScreeningCompletedEvent struct {
	ResponseID       string `json:"response_id"`
	QuestionnaireID  string `json:"questionnaire_id"`
	PatientID        string `json:"patient_id,omitempty"`
	TotalScore       int    `json:"total_score"`
	RiskLevel        string `json:"risk_level,omitempty"`
	FollowUpEligible bool   `json:"follow_up_eligible"`
	SubmittedAt      string `json:"submitted_at"`
}

type EventPublisher interface {
	PublishScreeningCompleted(ctx context.Context, event *ScreeningCompletedEvent) error
}
