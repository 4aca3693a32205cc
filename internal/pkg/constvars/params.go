package constvars

const (
	URLParamQuestionnaireID = "questionnaire_id"
	URLParamQuestionID      = "question_id"
	URLParamOptionID        = "option_id"
	URLParamResponseID      = "response_id"
	URLParamScoreBandID     = "score_band_id"
	URLParamPatientID       = "patient_id"
)

const (
	URLQueryParamPage      = "page"
	URLQueryParamPageSize  = "page_size"
	URLQueryParamStatus    = "status"
	URLQueryParamPatientID = "patient_id"
	URLQueryParamParentID  = "parent_question_id"
	URLQueryParamOptionID  = "option_id"
)
