package models

import "time"

type MedicalTest struct {
	ID           int64
	PatientID    int64
	TestName     string
	TestDate     time.Time
	UploadedFile *string
	Score        *float64
	ResultText   *string
	UploadedBy   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
