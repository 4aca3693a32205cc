package requests

type CreateQuestion struct {
	QuestionnaireID  string            `json:"-" validate:"required,object_id"`
	ParentQuestionID string            `json:"parent_question_id" validate:"omitempty,object_id"`
	GroupKey         *int              `json:"group_key" validate:"omitempty,gte=0"`
	Prompt           map[string]string `json:"prompt" validate:"required,min=1"`
	Required         bool              `json:"required"`
	Sequence         int               `json:"sequence" validate:"gte=0"`
	ScoringMethod    string            `json:"scoring_method" validate:"scoring_method"`
	ScoringConfig    *ScoringConfig    `json:"scoring_config"`
	Options          []CreateOption    `json:"options" validate:"omitempty,dive"`
}

type UpdateQuestion struct {
	ID               string            `json:"-" validate:"required,object_id"`
	ParentQuestionID string            `json:"parent_question_id" validate:"omitempty,object_id"`
	GroupKey         *int              `json:"group_key" validate:"omitempty,gte=0"`
	Prompt           map[string]string `json:"prompt" validate:"required,min=1"`
	Required         bool              `json:"required"`
	Sequence         int               `json:"sequence" validate:"gte=0"`
	Status           string            `json:"status" validate:"omitempty,oneof=Active Inactive"`
	ScoringMethod    string            `json:"scoring_method" validate:"scoring_method"`
	ScoringConfig    *ScoringConfig    `json:"scoring_config"`
}

// ScoringConfig mirrors the question's opaque scoring parameter blob.
type ScoringConfig struct {
	Threshold           *float64           `json:"threshold"`
	AboveThresholdScore *int               `json:"above_threshold_score"`
	BelowThresholdScore *int               `json:"below_threshold_score"`
	Weights             map[string]float64 `json:"weights"`
	IncludeMainQuestion bool               `json:"include_main_question"`
	TieBreakHigh        bool               `json:"tie_break_high"`
}

type CreateOption struct {
	Text                      string   `json:"text" validate:"required,max=500"`
	Value                     int      `json:"value" validate:"gte=0,lte=10"`
	Sequence                  int      `json:"sequence" validate:"gte=0"`
	ConditionalSubQuestionIDs []string `json:"conditional_sub_question_ids" validate:"omitempty,dive,object_id"`
}

type UpdateOption struct {
	ID                        string   `json:"-" validate:"required,object_id"`
	Text                      string   `json:"text" validate:"required,max=500"`
	Value                     int      `json:"value" validate:"gte=0,lte=10"`
	Sequence                  int      `json:"sequence" validate:"gte=0"`
	ConditionalSubQuestionIDs []string `json:"conditional_sub_question_ids" validate:"omitempty,dive,object_id"`
}

type ResolveSubQuestions struct {
	QuestionnaireID  string `validate:"required,object_id"`
	ParentQuestionID string `validate:"required,object_id"`
	OptionID         string `validate:"required,object_id"`
}
