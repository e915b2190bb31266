package requests

type CreatePatient struct {
	LastName            string  `json:"last_name" validate:"required,max=100"`
	FirstName           string  `json:"first_name" validate:"required,max=100"`
	MiddleName          *string `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	DateOfBirth         string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	ClinicID            *string `json:"clinic_id,omitempty" validate:"omitempty,max=50"`
	PrimaryDiagnosisMKB *string `json:"primary_diagnosis_mkb,omitempty" validate:"omitempty,max=20"`
	SessionData         string  `json:"-"`
}

type UpdatePatient struct {
	LastName            string  `json:"last_name" validate:"required,max=100"`
	FirstName           string  `json:"first_name" validate:"required,max=100"`
	MiddleName          *string `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	DateOfBirth         string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	ClinicID            *string `json:"clinic_id,omitempty" validate:"omitempty,max=50"`
	PrimaryDiagnosisMKB *string `json:"primary_diagnosis_mkb,omitempty" validate:"omitempty,max=20"`
	PatientID           int64   `json:"-"`
	SessionData         string  `json:"-"`
}

type PatientDynamics struct {
	PatientID      int64
	ParameterCodes []string
}
