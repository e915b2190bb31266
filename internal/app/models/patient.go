package models

import "time"

type Patient struct {
	ID                  int64
	LastName            string
	FirstName           string
	MiddleName          *string
	DateOfBirth         time.Time
	ClinicID            *string
	PrimaryDiagnosisMKB *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
