package routers

import (
	"clinregistry-service/internal/app/delivery/http/middlewares"
	"clinregistry-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", patientController.FindAllPatients)
	router.Post("/", patientController.CreatePatient)
	router.Get("/{patient_id}", patientController.FindPatientByID)
	router.Put("/{patient_id}", patientController.UpdatePatient)
	router.Delete("/{patient_id}", patientController.DeletePatient)

	router.Get("/{patient_id}/dynamics", patientController.FindPatientDynamics)
	router.Get("/{patient_id}/medical-tests", patientController.FindPatientMedicalTests)
	router.Get("/{patient_id}/episodes", patientController.FindPatientEpisodes)
}
