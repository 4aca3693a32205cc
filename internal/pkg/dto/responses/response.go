package responses

// SubmitResponseResult is the decision payload returned after a submission is
// scored. A precondition rejection never reuses this shape, so a zero
// TotalScore is always a real score.
type SubmitResponseResult struct {
	ResponseID        string             `json:"response_id"`
	TotalScore        int                `json:"total_score"`
	PerQuestionScores []PerQuestionScore `json:"per_question_scores"`
	Classification    *Classification    `json:"classification,omitempty"`
	FollowUpEligible  bool               `json:"follow_up_eligible"`
	SkippedAnswerIDs  []string           `json:"skipped_answer_ids,omitempty"`
}

type PerQuestionScore struct {
	QuestionID string `json:"question_id"`
	Score      int    `json:"score"`
	Method     string `json:"method"`
}

type Classification struct {
	Status         string `json:"status,omitempty"`
	Interpretation string `json:"interpretation,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

type ResponseDetail struct {
	ResponseID        string             `json:"response_id"`
	QuestionnaireID   string             `json:"questionnaire_id"`
	PatientID         string             `json:"patient_id,omitempty"`
	State             string             `json:"state"`
	TotalScore        int                `json:"total_score"`
	PerQuestionScores []PerQuestionScore `json:"per_question_scores"`
	Answers           []AnswerDetail     `json:"answers"`
	SkippedAnswerIDs  []string           `json:"skipped_answer_ids,omitempty"`
	CreatedAt         string             `json:"created_at"`
}

type AnswerDetail struct {
	QuestionID    string   `json:"question_id"`
	OptionID      string   `json:"option_id,omitempty"`
	TextAnswer    *string  `json:"text_answer,omitempty"`
	NumericAnswer *float64 `json:"numeric_answer,omitempty"`
	ResolvedScore int      `json:"resolved_score"`
}
