package requests

type CreateEpisode struct {
	PatientID   int64   `json:"patient_id" validate:"required"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SessionData string  `json:"-"`
}

type UpdateEpisode struct {
	PatientID   int64   `json:"patient_id" validate:"required"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EpisodeID   int64   `json:"-"`
	SessionData string  `json:"-"`
}

type ListEpisodes struct {
	PatientID *int64
}
