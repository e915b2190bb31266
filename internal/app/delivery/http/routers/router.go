package routers

import (
	"fmt"
	"time"

	"clinregistry-service/internal/app/config"
	"clinregistry-service/internal/app/delivery/http/middlewares"
	"clinregistry-service/internal/app/services/core/auth"
	"clinregistry-service/internal/app/services/core/episodes"
	medicalTests "clinregistry-service/internal/app/services/core/medical_tests"
	mkbCodes "clinregistry-service/internal/app/services/core/mkb_codes"
	"clinregistry-service/internal/app/services/core/observations"
	"clinregistry-service/internal/app/services/core/parameters"
	"clinregistry-service/internal/app/services/core/patients"
	"clinregistry-service/internal/app/services/core/research"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	patientController *patients.PatientController,
	episodeController *episodes.EpisodeController,
	observationController *observations.ObservationController,
	parameterController *parameters.ParameterController,
	mkbCodeController *mkbCodes.MKBCodeController,
	medicalTestController *medicalTests.MedicalTestController,
	researchController *research.ResearchController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Recoverer)
	router.Use(middlewares.LimitRequestBody)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})

			r.Route("/episodes", func(r chi.Router) {
				attachEpisodeRoutes(r, middlewares, episodeController)
			})

			r.Route("/observations", func(r chi.Router) {
				attachObservationRoutes(r, middlewares, observationController)
			})

			r.Route("/parameters", func(r chi.Router) {
				attachParameterRoutes(r, middlewares, parameterController)
			})

			r.Route("/mkb-codes", func(r chi.Router) {
				attachMKBCodeRoutes(r, middlewares, mkbCodeController)
			})

			r.Route("/medical-tests", func(r chi.Router) {
				attachMedicalTestRoutes(r, middlewares, medicalTestController)
			})

			r.Route("/research", func(r chi.Router) {
				attachResearchRoutes(r, middlewares, researchController)
			})
		})
	})
}
