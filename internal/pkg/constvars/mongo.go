package constvars

const (
	MongoCollectionQuestionnaires    = "questionnaires"
	MongoCollectionQuestions         = "questions"
	MongoCollectionOptions           = "options"
	MongoCollectionResponses         = "responses"
	MongoCollectionScoreBands        = "score_bands"
	MongoCollectionPatientScreenings = "patient_screenings"
)
