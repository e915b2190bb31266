package responses

import "time"

type Observation struct {
	ID            int64     `json:"id"`
	PatientID     int64     `json:"patient"`
	ParameterCode string    `json:"parameter"`
	ParameterName string    `json:"parameter_name,omitempty"`
	ParameterUnit *string   `json:"unit,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Value         string    `json:"value"`
	ValueNumeric  *float64  `json:"value_numeric,omitempty"`
	EpisodeID     *int64    `json:"episode,omitempty"`
	RecordedBy    *int64    `json:"recorded_by,omitempty"`
}
