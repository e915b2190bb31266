package requests

type CreateObservation struct {
	PatientID     int64  `json:"patient_id" validate:"required"`
	ParameterCode string `json:"parameter" validate:"required,max=50"`
	Timestamp     string `json:"timestamp,omitempty"`
	Value         string `json:"value" validate:"required,max=255"`
	EpisodeID     *int64 `json:"episode,omitempty"`
	SessionData   string `json:"-"`
}

type UpdateObservation struct {
	PatientID     int64  `json:"patient_id" validate:"required"`
	ParameterCode string `json:"parameter" validate:"required,max=50"`
	Timestamp     string `json:"timestamp,omitempty"`
	Value         string `json:"value" validate:"required,max=255"`
	EpisodeID     *int64 `json:"episode,omitempty"`
	ObservationID int64  `json:"-"`
	SessionData   string `json:"-"`
}

type ListObservations struct {
	PatientID     int64
	ParameterCode *string
	EpisodeID     *int64
}
