package responses

import "time"

type Patient struct {
	ID                  int64     `json:"id"`
	LastName            string    `json:"last_name"`
	FirstName           string    `json:"first_name"`
	MiddleName          *string   `json:"middle_name,omitempty"`
	DateOfBirth         string    `json:"date_of_birth"`
	ClinicID            *string   `json:"clinic_id,omitempty"`
	PrimaryDiagnosisMKB *string   `json:"primary_diagnosis_mkb,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
