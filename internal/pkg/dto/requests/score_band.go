package requests

type CreateScoreBand struct {
	QuestionnaireID string `json:"-" validate:"required,object_id"`
	MinScore        int    `json:"min_score" validate:"gte=0"`
	MaxScore        int    `json:"max_score" validate:"gtefield=MinScore"`
	Interpretation  string `json:"interpretation" validate:"required,max=500"`
	Recommendation  string `json:"recommendation" validate:"max=2000"`
}

type UpdateScoreBand struct {
	ID             string `json:"-" validate:"required,object_id"`
	MinScore       int    `json:"min_score" validate:"gte=0"`
	MaxScore       int    `json:"max_score" validate:"gtefield=MinScore"`
	Interpretation string `json:"interpretation" validate:"required,max=500"`
	Recommendation string `json:"recommendation" validate:"max=2000"`
}
