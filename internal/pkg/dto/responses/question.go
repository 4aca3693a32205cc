package responses

// SubQuestion is the client-facing shape returned by the conditional
// resolver, with options embedded so the next screen can render directly.
type SubQuestion struct {
	ID               string              `json:"id"`
	QuestionnaireID  string              `json:"questionnaire_id"`
	ParentQuestionID string              `json:"parent_question_id,omitempty"`
	Prompt           map[string]string   `json:"prompt"`
	Required         bool                `json:"required"`
	Sequence         int                 `json:"sequence"`
	Options          []SubQuestionOption `json:"options"`
}

type SubQuestionOption struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Value    int    `json:"value"`
	Sequence int    `json:"sequence"`
}
