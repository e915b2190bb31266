package requests

// CreateMedicalTest is populated from a multipart form; the uploaded file
// travels separately through the storage service.
type CreateMedicalTest struct {
	PatientID   int64    `validate:"required"`
	TestName    string   `validate:"required,max=255"`
	TestDate    string   `validate:"required,datetime=2006-01-02"`
	Score       *float64 `validate:"omitempty"`
	ResultText  *string  `validate:"omitempty"`
	FileName    string
	SessionData string
}

type UpdateMedicalTest struct {
	PatientID     int64    `validate:"required"`
	TestName      string   `validate:"required,max=255"`
	TestDate      string   `validate:"required,datetime=2006-01-02"`
	Score         *float64 `validate:"omitempty"`
	ResultText    *string  `validate:"omitempty"`
	FileName      string
	MedicalTestID int64
	SessionData   string
}
