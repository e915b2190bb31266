package routers

import (
	"clinregistry-service/internal/app/delivery/http/middlewares"
	"clinregistry-service/internal/app/services/core/parameters"

	"github.com/go-chi/chi/v5"
)

func attachParameterRoutes(router chi.Router, middlewares *middlewares.Middlewares, parameterController *parameters.ParameterController) {
	router.With(middlewares.Authenticate).Get("/", parameterController.FindAllParameters)
}
