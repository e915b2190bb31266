package routers

import (
	"clinregistry-service/internal/app/delivery/http/middlewares"
	mkbCodes "clinregistry-service/internal/app/services/core/mkb_codes"

	"github.com/go-chi/chi/v5"
)

func attachMKBCodeRoutes(router chi.Router, middlewares *middlewares.Middlewares, mkbCodeController *mkbCodes.MKBCodeController) {
	router.With(middlewares.Authenticate).Get("/", mkbCodeController.SearchMKBCodes)
}
