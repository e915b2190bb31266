package routers

import (
	"clinregistry-service/internal/app/delivery/http/middlewares"
	"clinregistry-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/refresh", authController.Refresh)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
