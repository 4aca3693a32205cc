package constvars

const (
	// Questionnaire messages
	CreateQuestionnaireSuccessMessage = "questionnaire created successfully"
	UpdateQuestionnaireSuccessMessage = "questionnaire updated successfully"
	FindQuestionnaireSuccessMessage   = "questionnaire fetched successfully"
	ListQuestionnaireSuccessMessage   = "questionnaires fetched successfully"
	DeleteQuestionnaireSuccessMessage = "questionnaire deleted successfully"

	// Question messages
	CreateQuestionSuccessMessage  = "question created successfully"
	UpdateQuestionSuccessMessage  = "question updated successfully"
	FindQuestionSuccessMessage    = "question fetched successfully"
	ListQuestionSuccessMessage    = "questions fetched successfully"
	DeleteQuestionSuccessMessage  = "question deleted successfully"
	ResolveSubQuestionsSuccessMsg = "sub-questions resolved successfully"

	// Option messages
	CreateOptionSuccessMessage = "option created successfully"
	UpdateOptionSuccessMessage = "option updated successfully"
	DeleteOptionSuccessMessage = "option deleted successfully"

	// Response messages
	SubmitResponseSuccessMessage = "response submitted and scored successfully"
	FindResponseSuccessMessage   = "response fetched successfully"
	ListResponseSuccessMessage   = "responses fetched successfully"

	// Score band messages
	CreateScoreBandSuccessMessage = "score band created successfully"
	UpdateScoreBandSuccessMessage = "score band updated successfully"
	ListScoreBandSuccessMessage   = "score bands fetched successfully"
	DeleteScoreBandSuccessMessage = "score band deleted successfully"

	// Screening messages
	FindScreeningSuccessMessage     = "screening state fetched successfully"
	ReenableScreeningSuccessMessage = "screening re-enabled successfully"
)
