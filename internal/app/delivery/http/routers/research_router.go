package routers

import (
	"clinregistry-service/internal/app/delivery/http/middlewares"
	"clinregistry-service/internal/app/services/core/research"

	"github.com/go-chi/chi/v5"
)

func attachResearchRoutes(router chi.Router, middlewares *middlewares.Middlewares, researchController *research.ResearchController) {
	router.With(middlewares.Authenticate).Get("/query", researchController.Query)
}
