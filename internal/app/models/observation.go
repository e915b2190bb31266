package models

import "time"

type Observation struct {
	ID            int64
	PatientID     int64
	ParameterCode string
	Timestamp     time.Time
	Value         string
	ValueNumeric  *float64
	RecordedBy    *int64
	EpisodeID     *int64

	// Denormalized catalog fields populated by joined reads.
	ParameterName string
	ParameterUnit *string
}
