package research

import (
	"context"
	"sync"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/dto/responses"
	"clinregistry-service/internal/pkg/exceptions"
	"clinregistry-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type researchUsecase struct {
	PatientRepository     contracts.PatientRepository
	ObservationRepository contracts.ObservationRepository
	Log                   *zap.Logger
}

var (
	researchUsecaseInstance contracts.ResearchUsecase
	onceResearchUsecase     sync.Once
)

func NewResearchUsecase(
	patientRepository contracts.PatientRepository,
	observationRepository contracts.ObservationRepository,
	logger *zap.Logger,
) contracts.ResearchUsecase {
	onceResearchUsecase.Do(func() {
		researchUsecaseInstance = &researchUsecase{
			PatientRepository:     patientRepository,
			ObservationRepository: observationRepository,
			Log:                   logger,
		}
	})
	return researchUsecaseInstance
}

// Query selects the patient cohort first, then fetches the matching
// observations for the whole cohort in one batched read and groups them
// back per patient. Patients without a single matching observation stay in
// the report with an empty observation list.
func (uc *researchUsecase) Query(ctx context.Context, request *requests.ResearchQuery) (*responses.ResearchReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("researchUsecase.Query called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings("param_codes", request.ParamCodes),
	)

	if len(request.ParamCodes) == 0 {
		return nil, exceptions.ErrMissingParamCodes(nil)
	}

	filter := contracts.ResearchPatientFilter{DiagnosisMKB: request.DiagnosisMKB}

	today := utils.Today()
	if request.AgeMin != nil {
		latest := utils.LatestBirthDateForMinAge(today, *request.AgeMin)
		filter.LatestBirthDate = &latest
	}
	if request.AgeMax != nil {
		earliest := utils.EarliestBirthDateForMaxAge(today, *request.AgeMax)
		filter.EarliestBirthDate = &earliest
	}

	patients, err := uc.PatientRepository.FindForResearch(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &responses.ResearchReport{Patients: []responses.ResearchPatient{}}
	if len(patients) == 0 {
		return report, nil
	}

	patientIDs := make([]int64, 0, len(patients))
	for _, patient := range patients {
		patientIDs = append(patientIDs, patient.ID)
	}

	observationFilter := contracts.ResearchObservationFilter{
		PatientIDs:     patientIDs,
		ParameterCodes: request.ParamCodes,
		StartDate:      request.StartDate,
	}
	if request.EndDate != nil {
		// The end date is inclusive; push the bound to the next midnight so
		// observations recorded during that day survive the filter.
		endBefore := request.EndDate.AddDate(0, 0, 1)
		observationFilter.EndBefore = &endBefore
	}

	observations, err := uc.ObservationRepository.FindForPatients(ctx, observationFilter)
	if err != nil {
		return nil, err
	}

	observationsByPatient := make(map[int64][]responses.ResearchObservation, len(patients))
	for _, observation := range observations {
		observationsByPatient[observation.PatientID] = append(
			observationsByPatient[observation.PatientID],
			convertResearchObservation(observation),
		)
	}

	for _, patient := range patients {
		entry := responses.ResearchPatient{
			ID:                  patient.ID,
			LastName:            patient.LastName,
			FirstName:           patient.FirstName,
			MiddleName:          patient.MiddleName,
			DateOfBirth:         patient.DateOfBirth.Format(constvars.DateOnlyFormat),
			ClinicID:            patient.ClinicID,
			PrimaryDiagnosisMKB: patient.PrimaryDiagnosisMKB,
			Observations:        []responses.ResearchObservation{},
		}
		if grouped, ok := observationsByPatient[patient.ID]; ok {
			entry.Observations = grouped
		}
		report.Patients = append(report.Patients, entry)
	}

	return report, nil
}

func convertResearchObservation(observation models.Observation) responses.ResearchObservation {
	return responses.ResearchObservation{
		ID:            observation.ID,
		ParameterCode: observation.ParameterCode,
		ParameterName: observation.ParameterName,
		ParameterUnit: observation.ParameterUnit,
		Timestamp:     observation.Timestamp,
		Value:         observation.Value,
		ValueNumeric:  observation.ValueNumeric,
		EpisodeID:     observation.EpisodeID,
	}
}
