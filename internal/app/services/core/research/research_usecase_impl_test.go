package research

import (
	"context"
	"testing"
	"time"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindForResearch(ctx context.Context, filter contracts.ResearchPatientFilter) ([]models.Patient, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Insert(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) Delete(ctx context.Context, patientID int64) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

type MockObservationRepository struct {
	mock.Mock
}

func (m *MockObservationRepository) FindFiltered(ctx context.Context, filter contracts.ObservationListFilter) ([]models.Observation, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Observation), args.Error(1)
}

func (m *MockObservationRepository) FindByID(ctx context.Context, observationID int64) (*models.Observation, error) {
	args := m.Called(ctx, observationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Observation), args.Error(1)
}

func (m *MockObservationRepository) FindDynamics(ctx context.Context, patientID int64, parameterCodes []string) ([]models.Observation, error) {
	args := m.Called(ctx, patientID, parameterCodes)
	return args.Get(0).([]models.Observation), args.Error(1)
}

func (m *MockObservationRepository) FindForPatients(ctx context.Context, filter contracts.ResearchObservationFilter) ([]models.Observation, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Observation), args.Error(1)
}

func (m *MockObservationRepository) Insert(ctx context.Context, observation *models.Observation) error {
	args := m.Called(ctx, observation)
	return args.Error(0)
}

func (m *MockObservationRepository) Update(ctx context.Context, observation *models.Observation) error {
	args := m.Called(ctx, observation)
	return args.Error(0)
}

func (m *MockObservationRepository) Delete(ctx context.Context, observationID int64) error {
	args := m.Called(ctx, observationID)
	return args.Error(0)
}

func TestResearchUsecase_Query(t *testing.T) {
	middleName := "Petrovna"
	diagnosis := "E11.9"
	temp := 36.6

	cohort := []models.Patient{
		{
			ID:                  1,
			LastName:            "Ivanova",
			FirstName:           "Anna",
			MiddleName:          &middleName,
			DateOfBirth:         time.Date(1970, time.May, 20, 0, 0, 0, 0, time.UTC),
			PrimaryDiagnosisMKB: &diagnosis,
		},
		{
			ID:          2,
			LastName:    "Petrov",
			FirstName:   "Boris",
			DateOfBirth: time.Date(1985, time.August, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	t.Run("Missing Param Codes", func(t *testing.T) {
		uc := &researchUsecase{Log: zap.NewNop()}

		_, err := uc.Query(context.Background(), &requests.ResearchQuery{})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Groups Observations Per Patient", func(t *testing.T) {
		patientRepo := new(MockPatientRepository)
		observationRepo := new(MockObservationRepository)
		uc := &researchUsecase{
			PatientRepository:     patientRepo,
			ObservationRepository: observationRepo,
			Log:                   zap.NewNop(),
		}

		patientRepo.On("FindForResearch", mock.Anything, mock.Anything).Return(cohort, nil)
		observationRepo.On("FindForPatients", mock.Anything, mock.MatchedBy(func(filter contracts.ResearchObservationFilter) bool {
			return len(filter.PatientIDs) == 2 && len(filter.ParameterCodes) == 1
		})).Return([]models.Observation{
			{
				ID:            10,
				PatientID:     1,
				ParameterCode: "temp",
				ParameterName: "Body temperature",
				Timestamp:     time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC),
				Value:         "36,6",
				ValueNumeric:  &temp,
			},
			{
				ID:            11,
				PatientID:     1,
				ParameterCode: "temp",
				ParameterName: "Body temperature",
				Timestamp:     time.Date(2026, time.February, 2, 9, 0, 0, 0, time.UTC),
				Value:         "37.1",
			},
		}, nil)

		report, err := uc.Query(context.Background(), &requests.ResearchQuery{
			ParamCodes: []string{"temp"},
		})

		assert.NoError(t, err)
		assert.Len(t, report.Patients, 2)
		assert.Len(t, report.Patients[0].Observations, 2)
		assert.Len(t, report.Patients[1].Observations, 0,
			"cohort members without matching observations stay in the report")
		assert.Equal(t, "1970-05-20", report.Patients[0].DateOfBirth)
		patientRepo.AssertExpectations(t)
		observationRepo.AssertExpectations(t)
	})

	t.Run("Age Filters Translate To Birth Date Bounds", func(t *testing.T) {
		patientRepo := new(MockPatientRepository)
		observationRepo := new(MockObservationRepository)
		uc := &researchUsecase{
			PatientRepository:     patientRepo,
			ObservationRepository: observationRepo,
			Log:                   zap.NewNop(),
		}

		ageMin, ageMax := 18, 65
		patientRepo.On("FindForResearch", mock.Anything, mock.MatchedBy(func(filter contracts.ResearchPatientFilter) bool {
			return filter.LatestBirthDate != nil && filter.EarliestBirthDate != nil &&
				filter.EarliestBirthDate.Before(*filter.LatestBirthDate)
		})).Return([]models.Patient{}, nil)

		report, err := uc.Query(context.Background(), &requests.ResearchQuery{
			AgeMin:     &ageMin,
			AgeMax:     &ageMax,
			ParamCodes: []string{"temp"},
		})

		assert.NoError(t, err)
		assert.Empty(t, report.Patients)
		patientRepo.AssertExpectations(t)
		observationRepo.AssertNotCalled(t, "FindForPatients")
	})

	t.Run("Diagnosis Filter Stays The Exact Code", func(t *testing.T) {
		patientRepo := new(MockPatientRepository)
		uc := &researchUsecase{
			PatientRepository:     patientRepo,
			ObservationRepository: new(MockObservationRepository),
			Log:                   zap.NewNop(),
		}

		mkb := "E11"
		patientRepo.On("FindForResearch", mock.Anything, mock.MatchedBy(func(filter contracts.ResearchPatientFilter) bool {
			// No wildcard appended: E11 must not pull in E11.9 patients.
			return filter.DiagnosisMKB != nil && *filter.DiagnosisMKB == "E11"
		})).Return([]models.Patient{}, nil)

		_, err := uc.Query(context.Background(), &requests.ResearchQuery{
			DiagnosisMKB: &mkb,
			ParamCodes:   []string{"temp"},
		})

		assert.NoError(t, err)
		patientRepo.AssertExpectations(t)
	})

	t.Run("Inclusive End Date Covers The Whole Day", func(t *testing.T) {
		patientRepo := new(MockPatientRepository)
		observationRepo := new(MockObservationRepository)
		uc := &researchUsecase{
			PatientRepository:     patientRepo,
			ObservationRepository: observationRepo,
			Log:                   zap.NewNop(),
		}

		endDate := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
		afternoonObservation := time.Date(2024, time.January, 31, 14, 0, 0, 0, time.UTC)

		patientRepo.On("FindForResearch", mock.Anything, mock.Anything).Return(cohort[:1], nil)
		observationRepo.On("FindForPatients", mock.Anything, mock.MatchedBy(func(filter contracts.ResearchObservationFilter) bool {
			return filter.EndBefore != nil &&
				filter.EndBefore.Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)) &&
				afternoonObservation.Before(*filter.EndBefore)
		})).Return([]models.Observation{}, nil)

		_, err := uc.Query(context.Background(), &requests.ResearchQuery{
			ParamCodes: []string{"temp"},
			EndDate:    &endDate,
		})

		assert.NoError(t, err)
		observationRepo.AssertExpectations(t)
	})
}
