package responses

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResearchReportRows(t *testing.T) {
	clinicID := "C-042"
	unit := "°C"
	valueNumeric := 36.6
	episodeID := int64(7)

	report := &ResearchReport{
		Patients: []ResearchPatient{
			{
				ID:          1,
				LastName:    "Ivanova",
				FirstName:   "Anna",
				DateOfBirth: "1970-05-20",
				ClinicID:    &clinicID,
				Observations: []ResearchObservation{
					{
						ID:            10,
						ParameterCode: "temp",
						ParameterName: "Body temperature",
						ParameterUnit: &unit,
						Timestamp:     time.Date(2026, time.February, 1, 9, 30, 0, 0, time.UTC),
						Value:         "36,6",
						ValueNumeric:  &valueNumeric,
						EpisodeID:     &episodeID,
					},
					{
						ID:            11,
						ParameterCode: "complaint",
						ParameterName: "Complaint",
						Timestamp:     time.Date(2026, time.February, 2, 9, 30, 0, 0, time.UTC),
						Value:         "headache",
					},
				},
			},
			{
				ID:           2,
				LastName:     "Petrov",
				FirstName:    "Boris",
				DateOfBirth:  "1985-08-02",
				Observations: []ResearchObservation{},
			},
		},
	}

	rows := report.Rows()

	assert.Len(t, rows, 3, "one row per observation plus one per observation-less patient")
	for _, row := range rows {
		assert.Len(t, row, len(ResearchCSVHeader))
	}

	assert.Equal(t, []string{
		"1", "Ivanova", "Anna", "", "1970-05-20", "C-042", "",
		"temp", "Body temperature", "°C", "2026-02-01T09:30:00Z", "36,6", "36.6", "7",
	}, rows[0])

	assert.Equal(t, []string{
		"1", "Ivanova", "Anna", "", "1970-05-20", "C-042", "",
		"complaint", "Complaint", "", "2026-02-02T09:30:00Z", "headache", "", "",
	}, rows[1])

	assert.Equal(t, []string{
		"2", "Petrov", "Boris", "", "1985-08-02", "", "",
		"", "", "", "", "", "", "",
	}, rows[2], "patients without observations keep only the demographic cells")
}
