package responses

import (
	"strconv"
	"time"
)

// ResearchObservation is one matching observation inside the nested JSON
// form of a research report.
type ResearchObservation struct {
	ID            int64     `json:"id"`
	ParameterCode string    `json:"parameter"`
	ParameterName string    `json:"parameter_name"`
	ParameterUnit *string   `json:"unit,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Value         string    `json:"value"`
	ValueNumeric  *float64  `json:"value_numeric,omitempty"`
	EpisodeID     *int64    `json:"episode,omitempty"`
}

// ResearchPatient is one patient with the observations that survived the
// query filters. Observations is empty for diagnosis-only matches.
type ResearchPatient struct {
	ID                  int64                 `json:"id"`
	LastName            string                `json:"last_name"`
	FirstName           string                `json:"first_name"`
	MiddleName          *string               `json:"middle_name,omitempty"`
	DateOfBirth         string                `json:"date_of_birth"`
	ClinicID            *string               `json:"clinic_id,omitempty"`
	PrimaryDiagnosisMKB *string               `json:"primary_diagnosis_mkb,omitempty"`
	Observations        []ResearchObservation `json:"observations"`
}

type ResearchReport struct {
	Patients []ResearchPatient `json:"patients"`
}

// ResearchCSVHeader is the column order of the flat tabular export.
var ResearchCSVHeader = []string{
	"patient_id", "last_name", "first_name", "middle_name", "date_of_birth",
	"clinic_id", "primary_diagnosis_mkb", "parameter", "parameter_name",
	"unit", "timestamp", "value", "value_numeric", "episode_id",
}

// Rows flattens the report into one record per observation, plus a single
// patient-only record for every patient without matching observations.
func (r *ResearchReport) Rows() [][]string {
	rows := make([][]string, 0, len(r.Patients))
	for _, patient := range r.Patients {
		if len(patient.Observations) == 0 {
			rows = append(rows, patientCells(patient, ResearchObservation{}, false))
			continue
		}
		for _, obs := range patient.Observations {
			rows = append(rows, patientCells(patient, obs, true))
		}
	}
	return rows
}

func patientCells(p ResearchPatient, obs ResearchObservation, withObs bool) []string {
	cells := []string{
		strconv.FormatInt(p.ID, 10),
		p.LastName,
		p.FirstName,
		derefString(p.MiddleName),
		p.DateOfBirth,
		derefString(p.ClinicID),
		derefString(p.PrimaryDiagnosisMKB),
	}
	if !withObs {
		return append(cells, "", "", "", "", "", "", "")
	}
	valueNumeric := ""
	if obs.ValueNumeric != nil {
		valueNumeric = strconv.FormatFloat(*obs.ValueNumeric, 'f', -1, 64)
	}
	episodeID := ""
	if obs.EpisodeID != nil {
		episodeID = strconv.FormatInt(*obs.EpisodeID, 10)
	}
	return append(cells,
		obs.ParameterCode,
		obs.ParameterName,
		derefString(obs.ParameterUnit),
		obs.Timestamp.Format(time.RFC3339),
		obs.Value,
		valueNumeric,
		episodeID,
	)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
