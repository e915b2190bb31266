package routers

import (
	"clinregistry-service/internal/app/delivery/http/middlewares"
	"clinregistry-service/internal/app/services/core/observations"

	"github.com/go-chi/chi/v5"
)

func attachObservationRoutes(router chi.Router, middlewares *middlewares.Middlewares, observationController *observations.ObservationController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", observationController.FindObservations)
	router.Post("/", observationController.CreateObservation)
	router.Get("/{observation_id}", observationController.FindObservationByID)
	router.Put("/{observation_id}", observationController.UpdateObservation)
	router.Delete("/{observation_id}", observationController.DeleteObservation)
}
