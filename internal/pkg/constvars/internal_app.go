package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	ResourceQuestionnaires = "questionnaires"
	ResourceQuestions      = "questions"
	ResourceOptions        = "options"
	ResourceResponses      = "responses"
	ResourceScoreBands     = "score-bands"
	ResourceScreenings     = "screenings"
)

// Questionnaire and question lifecycle statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Response lifecycle. OPEN exists client-side only; a response document is
// inserted already scored, never left submitted-but-unscored.
const (
	ResponseStateSubmitted = "Submitted"
	ResponseStateScored    = "Scored"
)

// Risk classification labels for the primary screening questionnaire.
const (
	RiskLevelLow    = "Low"
	RiskLevelMedium = "Medium"
	RiskLevelHigh   = "High"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
