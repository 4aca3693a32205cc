package routers

import (
	"fmt"
	"screening-service/internal/app/config"
	"screening-service/internal/app/delivery/http/middlewares"
	"screening-service/internal/app/services/core/questionnaires"
	"screening-service/internal/app/services/core/questions"
	"screening-service/internal/app/services/core/responses"
	"screening-service/internal/app/services/core/scorebands"
	"screening-service/internal/app/services/core/screenings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	submitLimiter *middlewares.RateLimiter,
	questionnaireController *questionnaires.QuestionnaireController,
	questionController *questions.QuestionController,
	responseController *responses.ResponseController,
	scoreBandController *scorebands.ScoreBandController,
	screeningController *screenings.ScreeningController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Api-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Coarse per-IP ceiling for the whole API; the submission endpoint gets
	// its own stricter limiter below.
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/questionnaires", func(r chi.Router) {
				attachQuestionnaireRoutes(r, middlewares, submitLimiter, questionnaireController, questionController, responseController, scoreBandController)
			})

			r.Route("/questions", func(r chi.Router) {
				attachQuestionRoutes(r, middlewares, questionController)
			})

			r.Route("/options", func(r chi.Router) {
				attachOptionRoutes(r, middlewares, questionController)
			})

			r.Route("/responses", func(r chi.Router) {
				attachResponseRoutes(r, middlewares, responseController)
			})

			r.Route("/score-bands", func(r chi.Router) {
				attachScoreBandRoutes(r, middlewares, scoreBandController)
			})

			r.Route("/screenings", func(r chi.Router) {
				attachScreeningRoutes(r, middlewares, screeningController)
			})
		})
	})
}
