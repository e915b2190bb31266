package observations

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

type observationUsecase struct {
	ObservationRepository contracts.ObservationRepository
	PatientRepository     contracts.PatientRepository
	ParameterRepository   contracts.ParameterRepository
	SessionService        contracts.SessionService
	AuditPublisher        contracts.AuditPublisher
	Log                   *zap.Logger
}

var (
	observationUsecaseInstance contracts.ObservationUsecase
	onceObservationUsecase     sync.Once
)

func NewObservationUsecase(
	observationRepository contracts.ObservationRepository,
	patientRepository contracts.PatientRepository,
	parameterRepository contracts.ParameterRepository,
	sessionService contracts.SessionService,
	auditPublisher contracts.AuditPublisher,
	logger *zap.Logger,
) contracts.ObservationUsecase {
	onceObservationUsecase.Do(func() {
		observationUsecaseInstance = &observationUsecase{
			ObservationRepository: observationRepository,
			PatientRepository:     patientRepository,
			ParameterRepository:   parameterRepository,
			SessionService:        sessionService,
			AuditPublisher:        auditPublisher,
			Log:                   logger,
		}
	})
	return observationUsecaseInstance
}

func (uc *observationUsecase) CreateObservation(ctx context.Context, request *requests.CreateObservation) (*responses.Observation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("observationUsecase.CreateObservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("patient_id", request.PatientID),
		zap.String("parameter_code", request.ParameterCode),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourcePatient)
	}

	parameter, err := uc.ParameterRepository.FindByCode(ctx, request.ParameterCode)
	if err != nil {
		return nil, err
	}
	if parameter == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourceParameter)
	}

	timestamp, err := parseObservationTimestamp(request.Timestamp)
	if err != nil {
		return nil, err
	}

	observation := &models.Observation{
		PatientID:     request.PatientID,
		ParameterCode: request.ParameterCode,
		Timestamp:     timestamp,
		Value:         request.Value,
		ValueNumeric:  deriveNumericValue(parameter, request.Value),
		EpisodeID:     request.EpisodeID,
		ParameterName: parameter.Name,
		ParameterUnit: parameter.Unit,
	}

	if session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData); err == nil {
		observation.RecordedBy = &session.UserID
	}

	if err := uc.ObservationRepository.Insert(ctx, observation); err != nil {
		return nil, err
	}

	uc.publishAudit(ctx, constvars.AuditActionCreate, observation.ID, request.SessionData)

	response := observation.ConvertIntoResponse()
	return &response, nil
}

func (uc *observationUsecase) FindObservations(ctx context.Context, request *requests.ListObservations) ([]responses.Observation, error) {
	observations, err := uc.ObservationRepository.FindFiltered(ctx, contracts.ObservationListFilter{
		PatientID:     request.PatientID,
		ParameterCode: request.ParameterCode,
		EpisodeID:     request.EpisodeID,
	})
	if err != nil {
		return nil, err
	}

	response := make([]responses.Observation, 0, len(observations))
	for _, observation := range observations {
		response = append(response, observation.ConvertIntoResponse())
	}
	return response, nil
}

func (uc *observationUsecase) FindObservationByID(ctx context.Context, observationID int64) (*responses.Observation, error) {
	observation, err := uc.ObservationRepository.FindByID(ctx, observationID)
	if err != nil {
		return nil, err
	}
	if observation == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourceObservation)
	}

	response := observation.ConvertIntoResponse()
	return &response, nil
}

func (uc *observationUsecase) UpdateObservation(ctx context.Context, request *requests.UpdateObservation) (*responses.Observation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("observationUsecase.UpdateObservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("observation_id", request.ObservationID),
	)

	existing, err := uc.ObservationRepository.FindByID(ctx, request.ObservationID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourceObservation)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourcePatient)
	}

	parameter, err := uc.ParameterRepository.FindByCode(ctx, request.ParameterCode)
	if err != nil {
		return nil, err
	}
	if parameter == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourceParameter)
	}

	timestamp := existing.Timestamp
	if request.Timestamp != "" {
		timestamp, err = parseObservationTimestamp(request.Timestamp)
		if err != nil {
			return nil, err
		}
	}

	observation := &models.Observation{
		ID:            request.ObservationID,
		PatientID:     request.PatientID,
		ParameterCode: request.ParameterCode,
		Timestamp:     timestamp,
		Value:         request.Value,
		ValueNumeric:  deriveNumericValue(parameter, request.Value),
		RecordedBy:    existing.RecordedBy,
		EpisodeID:     request.EpisodeID,
		ParameterName: parameter.Name,
		ParameterUnit: parameter.Unit,
	}

	if err := uc.ObservationRepository.Update(ctx, observation); err != nil {
		return nil, err
	}

	uc.publishAudit(ctx, constvars.AuditActionUpdate, observation.ID, request.SessionData)

	response := observation.ConvertIntoResponse()
	return &response, nil
}

func (uc *observationUsecase) DeleteObservation(ctx context.Context, observationID int64, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("observationUsecase.DeleteObservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("observation_id", observationID),
	)

	if err := uc.ObservationRepository.Delete(ctx, observationID); err != nil {
		return err
	}

	uc.publishAudit(ctx, constvars.AuditActionDelete, observationID, sessionData)
	return nil
}

// deriveNumericValue recomputes the sortable numeric shadow of a raw value.
// Parameters that are not numeric never get one, and an unparseable value on
// a numeric parameter is stored as raw text only.
func deriveNumericValue(parameter *models.ParameterCode, value string) *float64 {
	if !parameter.IsNumeric {
		return nil
	}
	return utils.ParseDecimalValue(value)
}

func parseObservationTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return parsed, nil
}

func (uc *observationUsecase) publishAudit(ctx context.Context, action string, observationID int64, sessionData string) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return
	}
	uc.AuditPublisher.Publish(ctx, &models.AuditEvent{
		ID:         uuid.NewString(),
		Action:     action,
		Resource:   constvars.ResourceObservation,
		ResourceID: observationID,
		ActorID:    session.UserID,
		Actor:      session.Username,
		OccurredAt: time.Now(),
	})
}
