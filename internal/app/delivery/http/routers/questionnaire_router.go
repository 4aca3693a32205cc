package routers

import (
	"screening-service/internal/app/delivery/http/middlewares"
	"screening-service/internal/app/services/core/questionnaires"
	"screening-service/internal/app/services/core/questions"
	"screening-service/internal/app/services/core/responses"
	"screening-service/internal/app/services/core/scorebands"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	submitLimiter *middlewares.RateLimiter,
	questionnaireController *questionnaires.QuestionnaireController,
	questionController *questions.QuestionController,
	responseController *responses.ResponseController,
	scoreBandController *scorebands.ScoreBandController,
) {
	router.Get("/", questionnaireController.ListQuestionnaires)
	router.Get("/{questionnaire_id}", questionnaireController.FindQuestionnaireByID)

	router.With(middlewares.RequireAPIKey).Post("/", questionnaireController.CreateQuestionnaire)
	router.With(middlewares.RequireAPIKey).Put("/{questionnaire_id}", questionnaireController.UpdateQuestionnaire)
	router.With(middlewares.RequireAPIKey).Delete("/{questionnaire_id}", questionnaireController.DeleteQuestionnaireByID)

	router.Get("/{questionnaire_id}/questions", questionController.ListQuestionsByQuestionnaireID)
	router.With(middlewares.RequireAPIKey).Post("/{questionnaire_id}/questions", questionController.CreateQuestion)

	// Conditional resolver: which sub-questions does the selected option
	// reveal under this parent question.
	router.Get("/{questionnaire_id}/questions/{question_id}/sub-questions", questionController.ResolveSubQuestions)

	router.With(middlewares.SessionAuth, submitLimiter.Limit).Post("/{questionnaire_id}/responses", responseController.SubmitResponse)
	router.With(middlewares.RequireAPIKey).Get("/{questionnaire_id}/responses", responseController.ListResponses)

	router.Get("/{questionnaire_id}/score-bands", scoreBandController.ListScoreBandsByQuestionnaireID)
	router.With(middlewares.RequireAPIKey).Post("/{questionnaire_id}/score-bands", scoreBandController.CreateScoreBand)
}
