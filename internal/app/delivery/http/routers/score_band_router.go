package routers

import (
	"screening-service/internal/app/delivery/http/middlewares"
	"screening-service/internal/app/services/core/scorebands"

	"github.com/go-chi/chi/v5"
)

func attachScoreBandRoutes(router chi.Router, middlewares *middlewares.Middlewares, scoreBandController *scorebands.ScoreBandController) {
	router.With(middlewares.RequireAPIKey).Put("/{score_band_id}", scoreBandController.UpdateScoreBand)
	router.With(middlewares.RequireAPIKey).Delete("/{score_band_id}", scoreBandController.DeleteScoreBandByID)
}
