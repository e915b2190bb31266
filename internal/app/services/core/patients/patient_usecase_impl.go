package patients

import (
	"context"
	"sync"
	"time"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/dto/responses"
	"clinregistry-service/internal/pkg/exceptions"
	"clinregistry-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository     contracts.PatientRepository
	EpisodeRepository     contracts.EpisodeRepository
	ObservationRepository contracts.ObservationRepository
	MedicalTestRepository contracts.MedicalTestRepository
	SessionService        contracts.SessionService
	AuditPublisher        contracts.AuditPublisher
	Log                   *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	episodeRepository contracts.EpisodeRepository,
	observationRepository contracts.ObservationRepository,
	medicalTestRepository contracts.MedicalTestRepository,
	sessionService contracts.SessionService,
	auditPublisher contracts.AuditPublisher,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository:     patientRepository,
			EpisodeRepository:     episodeRepository,
			ObservationRepository: observationRepository,
			MedicalTestRepository: medicalTestRepository,
			SessionService:        sessionService,
			AuditPublisher:        auditPublisher,
			Log:                   logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	dateOfBirth, err := utils.ParseDate(request.DateOfBirth)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{
		LastName:            request.LastName,
		FirstName:           request.FirstName,
		MiddleName:          request.MiddleName,
		DateOfBirth:         dateOfBirth,
		ClinicID:            request.ClinicID,
		PrimaryDiagnosisMKB: request.PrimaryDiagnosisMKB,
	}

	if err := uc.PatientRepository.Insert(ctx, patient); err != nil {
		return nil, err
	}

	uc.publishAudit(ctx, constvars.AuditActionCreate, patient.ID, request.SessionData)

	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) FindAllPatients(ctx context.Context) ([]responses.Patient, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Patient, 0, len(patients))
	for _, patient := range patients {
		response = append(response, patient.ConvertIntoResponse())
	}
	return response, nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID int64) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourcePatient)
	}

	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("patient_id", request.PatientID),
	)

	existing, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourcePatient)
	}

	dateOfBirth, err := utils.ParseDate(request.DateOfBirth)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{
		ID:                  request.PatientID,
		LastName:            request.LastName,
		FirstName:           request.FirstName,
		MiddleName:          request.MiddleName,
		DateOfBirth:         dateOfBirth,
		ClinicID:            request.ClinicID,
		PrimaryDiagnosisMKB: request.PrimaryDiagnosisMKB,
	}

	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		return nil, err
	}

	uc.publishAudit(ctx, constvars.AuditActionUpdate, patient.ID, request.SessionData)

	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID int64, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("patient_id", patientID),
	)

	if err := uc.PatientRepository.Delete(ctx, patientID); err != nil {
		return err
	}

	uc.publishAudit(ctx, constvars.AuditActionDelete, patientID, sessionData)
	return nil
}

// FindPatientDynamics returns the patient's observations restricted to the
// requested parameter codes, sorted by timestamp ascending for charting.
func (uc *patientUsecase) FindPatientDynamics(ctx context.Context, request *requests.PatientDynamics) ([]responses.Observation, error) {
	if len(request.ParameterCodes) == 0 {
		return nil, exceptions.ErrMissingDynamicsParam(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourcePatient)
	}

	observations, err := uc.ObservationRepository.FindDynamics(ctx, request.PatientID, request.ParameterCodes)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Observation, 0, len(observations))
	for _, observation := range observations {
		response = append(response, observation.ConvertIntoResponse())
	}
	return response, nil
}

func (uc *patientUsecase) FindPatientMedicalTests(ctx context.Context, patientID int64) ([]responses.MedicalTest, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourcePatient)
	}

	medicalTests, err := uc.MedicalTestRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.MedicalTest, 0, len(medicalTests))
	for _, medicalTest := range medicalTests {
		response = append(response, medicalTest.ConvertIntoResponse())
	}
	return response, nil
}

func (uc *patientUsecase) FindPatientEpisodes(ctx context.Context, patientID int64) ([]responses.Episode, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourcePatient)
	}

	episodes, err := uc.EpisodeRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Episode, 0, len(episodes))
	for _, episode := range episodes {
		response = append(response, episode.ConvertIntoResponse())
	}
	return response, nil
}

func (uc *patientUsecase) publishAudit(ctx context.Context, action string, patientID int64, sessionData string) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return
	}
	uc.AuditPublisher.Publish(ctx, &models.AuditEvent{
		ID:         uuid.NewString(),
		Action:     action,
		Resource:   constvars.ResourcePatient,
		ResourceID: patientID,
		ActorID:    session.UserID,
		Actor:      session.Username,
		OccurredAt: time.Now(),
	})
}
