package requests

type SubmitResponse struct {
	QuestionnaireID string         `json:"questionnaire_id" validate:"required,object_id"`
	PatientID       string         `json:"patient_id" validate:"omitempty,max=64"`
	Answers         []SubmitAnswer `json:"answers" validate:"required,min=1,dive"`
}

type SubmitAnswer struct {
	QuestionID    string   `json:"question_id" validate:"required,object_id"`
	OptionID      string   `json:"option_id" validate:"omitempty,object_id"`
	TextAnswer    *string  `json:"text_answer"`
	NumericAnswer *float64 `json:"numeric_answer"`
}

type ListResponses struct {
	QuestionnaireID string `validate:"required,object_id"`
	PatientID       string `validate:"omitempty,max=64"`
	Page            int    `validate:"gte=1"`
	PageSize        int    `validate:"gte=1,lte=100"`
}
