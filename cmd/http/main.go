package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinregistry-service/cmd/migration"
	"clinregistry-service/internal/app/config"
	"clinregistry-service/internal/app/delivery/http/middlewares"
	"clinregistry-service/internal/app/delivery/http/routers"
	"clinregistry-service/internal/app/drivers/database"
	"clinregistry-service/internal/app/drivers/logger"
	"clinregistry-service/internal/app/drivers/messaging"
	driverstorage "clinregistry-service/internal/app/drivers/storage"
	"clinregistry-service/internal/app/services/core/auth"
	"clinregistry-service/internal/app/services/core/episodes"
	medicalTests "clinregistry-service/internal/app/services/core/medical_tests"
	mkbCodes "clinregistry-service/internal/app/services/core/mkb_codes"
	"clinregistry-service/internal/app/services/core/observations"
	"clinregistry-service/internal/app/services/core/parameters"
	"clinregistry-service/internal/app/services/core/patients"
	"clinregistry-service/internal/app/services/core/research"
	"clinregistry-service/internal/app/services/core/users"
	"clinregistry-service/internal/app/services/shared/audit"
	sharedredis "clinregistry-service/internal/app/services/shared/redis"
	"clinregistry-service/internal/app/services/shared/session"
	sharedstorage "clinregistry-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	applied, err := migration.Run(postgresDB)
	if err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
	log.Infof("Applied %d migrations", applied)

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := driverstorage.NewMinio(driverConfig)

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	chiRouter := chi.NewRouter()

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(redisClient)
	sessionService := session.NewSessionService(redisRepository)
	minioStorage := sharedstorage.NewMinioStorage(minioClient, driverConfig.Minio.BucketName)
	auditPublisher, err := audit.NewAuditPublisher(rabbitMQConn, internalConfig.App.AuditQueueName, zapLogger)
	if err != nil {
		log.Fatalf("Error initializing audit publisher: %v", err)
	}

	// Repositories
	userRepository := users.NewUserPostgresRepository(postgresDB, zapLogger)
	patientRepository := patients.NewPatientPostgresRepository(postgresDB, zapLogger)
	episodeRepository := episodes.NewEpisodePostgresRepository(postgresDB, zapLogger)
	observationRepository := observations.NewObservationPostgresRepository(postgresDB, zapLogger)
	parameterRepository := parameters.NewParameterPostgresRepository(postgresDB, zapLogger)
	mkbCodeRepository := mkbCodes.NewMKBCodePostgresRepository(postgresDB, zapLogger)
	medicalTestRepository := medicalTests.NewMedicalTestPostgresRepository(postgresDB, zapLogger)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, redisRepository, sessionService, internalConfig, zapLogger)
	patientUsecase := patients.NewPatientUsecase(patientRepository, episodeRepository, observationRepository, medicalTestRepository, sessionService, auditPublisher, zapLogger)
	episodeUsecase := episodes.NewEpisodeUsecase(episodeRepository, patientRepository, sessionService, auditPublisher, zapLogger)
	observationUsecase := observations.NewObservationUsecase(observationRepository, patientRepository, parameterRepository, sessionService, auditPublisher, zapLogger)
	parameterUsecase := parameters.NewParameterUsecase(parameterRepository, zapLogger)
	mkbCodeUsecase := mkbCodes.NewMKBCodeUsecase(mkbCodeRepository, zapLogger)
	medicalTestUsecase := medicalTests.NewMedicalTestUsecase(medicalTestRepository, patientRepository, minioStorage, sessionService, auditPublisher, zapLogger)
	researchUsecase := research.NewResearchUsecase(patientRepository, observationRepository, zapLogger)

	// Controllers
	authController := auth.NewAuthController(zapLogger, authUsecase)
	patientController := patients.NewPatientController(zapLogger, patientUsecase)
	episodeController := episodes.NewEpisodeController(zapLogger, episodeUsecase)
	observationController := observations.NewObservationController(zapLogger, observationUsecase)
	parameterController := parameters.NewParameterController(zapLogger, parameterUsecase)
	mkbCodeController := mkbCodes.NewMKBCodeController(zapLogger, mkbCodeUsecase)
	medicalTestController := medicalTests.NewMedicalTestController(zapLogger, internalConfig, medicalTestUsecase)
	researchController := research.NewResearchController(zapLogger, researchUsecase)

	appMiddlewares := middlewares.NewMiddlewares(zapLogger, sessionService, internalConfig)

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		appMiddlewares,
		authController,
		patientController,
		episodeController,
		observationController,
		parameterController,
		mkbCodeController,
		medicalTestController,
		researchController,
	)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
