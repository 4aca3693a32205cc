package routers

import (
	"screening-service/internal/app/delivery/http/middlewares"
	"screening-service/internal/app/services/core/screenings"

	"github.com/go-chi/chi/v5"
)

func attachScreeningRoutes(router chi.Router, middlewares *middlewares.Middlewares, screeningController *screenings.ScreeningController) {
	router.Get("/{patient_id}", screeningController.FindScreeningState)
	router.With(middlewares.RequireAPIKey).Post("/{patient_id}/reenable", screeningController.ReenableScreening)
}
