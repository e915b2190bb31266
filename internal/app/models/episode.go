package models

import "time"

type Episode struct {
	ID        int64
	PatientID int64
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
