package requests

type CreateQuestionnaire struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Status      string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type UpdateQuestionnaire struct {
	ID          string `json:"-" validate:"required,object_id"`
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Status      string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}
