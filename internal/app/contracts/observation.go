package contracts

import (
	"context"
	"time"

	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/dto/responses"
)

// ObservationListFilter narrows a listing; PatientID is mandatory there.
type ObservationListFilter struct {
	PatientID     int64
	ParameterCode *string
	EpisodeID     *int64
}

// ResearchObservationFilter is the batched observation fetch of a research
// query: one round trip for the whole surviving patient set. EndBefore is an
// exclusive upper bound so an inclusive end date covers the whole day.
type ResearchObservationFilter struct {
	PatientIDs     []int64
	ParameterCodes []string
	StartDate      *time.Time
	EndBefore      *time.Time
}

type ObservationRepository interface {
	FindFiltered(ctx context.Context, filter ObservationListFilter) ([]models.Observation, error)
	FindByID(ctx context.Context, observationID int64) (*models.Observation, error)
	FindDynamics(ctx context.Context, patientID int64, parameterCodes []string) ([]models.Observation, error)
	FindForPatients(ctx context.Context, filter ResearchObservationFilter) ([]models.Observation, error)
	Insert(ctx context.Context, observation *models.Observation) error
	Update(ctx context.Context, observation *models.Observation) error
	Delete(ctx context.Context, observationID int64) error
}

type ObservationUsecase interface {
	CreateObservation(ctx context.Context, request *requests.CreateObservation) (*responses.Observation, error)
	FindObservations(ctx context.Context, request *requests.ListObservations) ([]responses.Observation, error)
	FindObservationByID(ctx context.Context, observationID int64) (*responses.Observation, error)
	UpdateObservation(ctx context.Context, request *requests.UpdateObservation) (*responses.Observation, error)
	DeleteObservation(ctx context.Context, observationID int64, sessionData string) error
}
