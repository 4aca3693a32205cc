package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"dive":     "contains an invalid element",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientQuestionnaireNotFound         = "questionnaire not found or no longer available"
	ErrClientQuestionNotFound              = "question not found or no longer available"
	ErrClientResponseNotFound              = "response not found"
	ErrClientScoreBandNotFound             = "score band not found"
	ErrClientQuestionParentCycle           = "question parent would create a cycle"
	ErrClientQuestionParentOtherForm       = "question parent must belong to the same questionnaire"
	ErrClientAlreadyScreened               = "this screening has already been completed for the patient"
	ErrClientFollowUpNotEligible           = "the follow-up questionnaire is not unlocked for this patient"
	ErrClientNoAnswersResolvable           = "none of the submitted answers could be resolved"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevBuildRequest               = "encountering error while building request DTO"
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevDocumentNotFound           = "document not found"

	// Authentication messages
	ErrDevAuthSigningMethod  = "unexpected signing method"
	ErrDevAuthTokenInvalid   = "invalid or expired token"
	ErrDevAuthTokenMissing   = "token missing"
	ErrDevAuthGenerateToken  = "failed to generate token"
	ErrDevAuthInvalidSession = "invalid session"
	ErrDevAuthInvalidAPIKey  = "invalid api key"

	// Screening engine messages
	ErrDevQuestionnaireNotFound    = "questionnaire does not exist or is soft-deleted"
	ErrDevQuestionNotFound         = "question does not exist or is soft-deleted"
	ErrDevQuestionParentCycle      = "parent chain cycle detected while re-parenting question"
	ErrDevQuestionParentOtherForm  = "parent question belongs to a different questionnaire"
	ErrDevResponseNotFound         = "response does not exist"
	ErrDevScoreBandNotFound        = "score band does not exist or is soft-deleted"
	ErrDevPatientAlreadyScreened   = "patient eligibility flag says already screened"
	ErrDevFollowUpGateNotSatisfied = "no prior primary response with total score inside the follow-up gate"
	ErrDevNoAnswersResolvable      = "every submitted answer referenced a missing question or option"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq queue '%s'"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevRequestLimitExceeded   = "request limit exceeded"
)

const (
	ResponseUnknown = "unknown"
)
