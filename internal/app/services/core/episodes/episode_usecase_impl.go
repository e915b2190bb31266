package episodes

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

type episodeUsecase struct {
	EpisodeRepository contracts.EpisodeRepository
	PatientRepository contracts.PatientRepository
	SessionService    contracts.SessionService
	AuditPublisher    contracts.AuditPublisher
	Log               *zap.Logger
}

var (
	episodeUsecaseInstance contracts.EpisodeUsecase
	onceEpisodeUsecase     sync.Once
)

func NewEpisodeUsecase(
	episodeRepository contracts.EpisodeRepository,
	patientRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
	auditPublisher contracts.AuditPublisher,
	logger *zap.Logger,
) contracts.EpisodeUsecase {
	onceEpisodeUsecase.Do(func() {
		episodeUsecaseInstance = &episodeUsecase{
			EpisodeRepository: episodeRepository,
			PatientRepository: patientRepository,
			SessionService:    sessionService,
			AuditPublisher:    auditPublisher,
			Log:               logger,
		}
	})
	return episodeUsecaseInstance
}

func (uc *episodeUsecase) CreateEpisode(ctx context.Context, request *requests.CreateEpisode) (*responses.Episode, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("episodeUsecase.CreateEpisode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("patient_id", request.PatientID),
	)

	startDate, endDate, err := uc.parseEpisodeDates(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourcePatient)
	}

	episode := &models.Episode{
		PatientID: request.PatientID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := uc.EpisodeRepository.Insert(ctx, episode); err != nil {
		return nil, err
	}

	uc.publishAudit(ctx, constvars.AuditActionCreate, episode.ID, request.SessionData)

	response := episode.ConvertIntoResponse()
	return &response, nil
}

func (uc *episodeUsecase) FindEpisodes(ctx context.Context, request *requests.ListEpisodes) ([]responses.Episode, error) {
	var episodes []models.Episode
	var err error

	if request.PatientID != nil {
		episodes, err = uc.EpisodeRepository.FindByPatientID(ctx, *request.PatientID)
	} else {
		episodes, err = uc.EpisodeRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	response := make([]responses.Episode, 0, len(episodes))
	for _, episode := range episodes {
		response = append(response, episode.ConvertIntoResponse())
	}
	return response, nil
}

func (uc *episodeUsecase) FindEpisodeByID(ctx context.Context, episodeID int64) (*responses.Episode, error) {
	episode, err := uc.EpisodeRepository.FindByID(ctx, episodeID)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourceEpisode)
	}

	response := episode.ConvertIntoResponse()
	return &response, nil
}

func (uc *episodeUsecase) UpdateEpisode(ctx context.Context, request *requests.UpdateEpisode) (*responses.Episode, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("episodeUsecase.UpdateEpisode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("episode_id", request.EpisodeID),
	)

	startDate, endDate, err := uc.parseEpisodeDates(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	existing, err := uc.EpisodeRepository.FindByID(ctx, request.EpisodeID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourceEpisode)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourcePatient)
	}

	episode := &models.Episode{
		ID:        request.EpisodeID,
		PatientID: request.PatientID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := uc.EpisodeRepository.Update(ctx, episode); err != nil {
		return nil, err
	}

	uc.publishAudit(ctx, constvars.AuditActionUpdate, episode.ID, request.SessionData)

	response := episode.ConvertIntoResponse()
	return &response, nil
}

func (uc *episodeUsecase) DeleteEpisode(ctx context.Context, episodeID int64, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("episodeUsecase.DeleteEpisode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("episode_id", episodeID),
	)

	if err := uc.EpisodeRepository.Delete(ctx, episodeID); err != nil {
		return err
	}

	uc.publishAudit(ctx, constvars.AuditActionDelete, episodeID, sessionData)
	return nil
}

// parseEpisodeDates rejects an open interval closed before it starts; an
// absent end date marks an ongoing episode.
func (uc *episodeUsecase) parseEpisodeDates(rawStart string, rawEnd *string) (time.Time, *time.Time, error) {
	startDate, err := utils.ParseDate(rawStart)
	if err != nil {
		return time.Time{}, nil, err
	}

	var endDate *time.Time
	if rawEnd != nil {
		parsed, err := utils.ParseDate(*rawEnd)
		if err != nil {
			return time.Time{}, nil, err
		}
		if parsed.Before(startDate) {
			return time.Time{}, nil, exceptions.ErrEpisodeDatesInverted(nil)
		}
		endDate = &parsed
	}

	return startDate, endDate, nil
}

func (uc *episodeUsecase) publishAudit(ctx context.Context, action string, episodeID int64, sessionData string) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return
	}
	uc.AuditPublisher.Publish(ctx, &models.AuditEvent{
		ID:         uuid.NewString(),
		Action:     action,
		Resource:   constvars.ResourceEpisode,
		ResourceID: episodeID,
		ActorID:    session.UserID,
		Actor:      session.Username,
		OccurredAt: time.Now(),
	})
}
