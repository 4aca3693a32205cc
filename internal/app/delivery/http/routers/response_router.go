package routers

import (
	"screening-service/internal/app/delivery/http/middlewares"
	"screening-service/internal/app/services/core/responses"

	"github.com/go-chi/chi/v5"
)

func attachResponseRoutes(router chi.Router, middlewares *middlewares.Middlewares, responseController *responses.ResponseController) {
	router.With(middlewares.SessionAuth).Get("/{response_id}", responseController.FindResponseByID)
}
