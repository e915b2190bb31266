package responses

import "time"

type Episode struct {
	ID        int64     `json:"id"`
	PatientID int64     `json:"patient_id"`
	StartDate string    `json:"start_date"`
	EndDate   *string   `json:"end_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
