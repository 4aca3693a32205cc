package config

type InternalConfig struct {
	App       App
	JWT       JWT
	Screening Screening
	RabbitMQ  AppRabbitMQ
	Minio     AppMinio
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	SuperadminAPIKeyHash       string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int

	// Submission limiter: requests per second per IP for the scoring
	// endpoint, with a temporary block after sustained abuse.
	SubmitRatePerSecond        int
	SubmitRateBlockTimeInMin   int
	ResolverCacheTTLInSeconds  int
	EligibilityCacheTTLInHours int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

// Screening carries the fixed business wiring between the primary screening
// questionnaire and its dependent follow-up.
type Screening struct {
	PrimaryQuestionnaireID  string
	FollowUpQuestionnaireID string
	// NonScoringQuestionIDs lists legacy question ids excluded by or_logic.
	NonScoringQuestionIDs []string
}

type AppRabbitMQ struct {
	ScreeningEventQueue string
}

type AppMinio struct {
	BucketName string
}
