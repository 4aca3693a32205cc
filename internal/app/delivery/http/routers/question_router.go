package routers

import (
	"screening-service/internal/app/delivery/http/middlewares"
	"screening-service/internal/app/services/core/questions"

	"github.com/go-chi/chi/v5"
)

func attachQuestionRoutes(router chi.Router, middlewares *middlewares.Middlewares, questionController *questions.QuestionController) {
	router.Get("/{question_id}", questionController.FindQuestionByID)
	router.With(middlewares.RequireAPIKey).Put("/{question_id}", questionController.UpdateQuestion)
	router.With(middlewares.RequireAPIKey).Delete("/{question_id}", questionController.DeleteQuestionByID)
	router.With(middlewares.RequireAPIKey).Post("/{question_id}/options", questionController.CreateOption)
}

func attachOptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, questionController *questions.QuestionController) {
	router.With(middlewares.RequireAPIKey).Put("/{option_id}", questionController.UpdateOption)
	router.With(middlewares.RequireAPIKey).Delete("/{option_id}", questionController.DeleteOptionByID)
}
