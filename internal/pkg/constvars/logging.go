package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingRequestKey         = "request"
	LoggingResponseKey        = "response"
	LoggingPatientIDKey       = "patient_id"
	LoggingQuestionnaireIDKey = "questionnaire_id"
	LoggingQuestionIDKey      = "question_id"
	LoggingOptionIDKey        = "option_id"
	LoggingResponseIDKey      = "response_id"
	LoggingTotalScoreKey      = "total_score"
	LoggingGroupCountKey      = "group_count"
	LoggingAnswerCountKey     = "answer_count"
	LoggingSkippedAnswersKey  = "skipped_answer_ids"
	LoggingQuestionCountKey   = "question_count"
)
