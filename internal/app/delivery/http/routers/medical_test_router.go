package routers

import (
	"clinregistry-service/internal/app/delivery/http/middlewares"
	medicalTests "clinregistry-service/internal/app/services/core/medical_tests"

	"github.com/go-chi/chi/v5"
)

func attachMedicalTestRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicalTestController *medicalTests.MedicalTestController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", medicalTestController.FindMedicalTests)
	router.Post("/", medicalTestController.CreateMedicalTest)
	router.Get("/{medical_test_id}", medicalTestController.FindMedicalTestByID)
	router.Put("/{medical_test_id}", medicalTestController.UpdateMedicalTest)
	router.Delete("/{medical_test_id}", medicalTestController.DeleteMedicalTest)
}
