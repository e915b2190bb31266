package contracts

import (
	"context"
	"time"

	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/dto/responses"
)

// ResearchPatientFilter accumulates the optional patient-level predicates of
// a research query; nil fields are left out of the composed WHERE clause.
type ResearchPatientFilter struct {
	DiagnosisMKB      *string
	LatestBirthDate   *time.Time
	EarliestBirthDate *time.Time
}

type PatientRepository interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID int64) (*models.Patient, error)
	FindForResearch(ctx context.Context, filter ResearchPatientFilter) ([]models.Patient, error)
	Insert(ctx context.Context, patient *models.Patient) error
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, patientID int64) error
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	FindAllPatients(ctx context.Context) ([]responses.Patient, error)
	FindPatientByID(ctx context.Context, patientID int64) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, patientID int64, sessionData string) error
	FindPatientDynamics(ctx context.Context, request *requests.PatientDynamics) ([]responses.Observation, error)
	FindPatientMedicalTests(ctx context.Context, patientID int64) ([]responses.MedicalTest, error)
	FindPatientEpisodes(ctx context.Context, patientID int64) ([]responses.Episode, error)
}
