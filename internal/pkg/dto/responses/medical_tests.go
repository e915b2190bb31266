package responses

import "time"

type MedicalTest struct {
	ID           int64     `json:"id"`
	PatientID    int64     `json:"patient_id"`
	TestName     string    `json:"test_name"`
	TestDate     string    `json:"test_date"`
	UploadedFile *string   `json:"uploaded_file,omitempty"`
	Filename     *string   `json:"filename,omitempty"`
	Score        *float64  `json:"score,omitempty"`
	ResultText   *string   `json:"result_text,omitempty"`
	UploadedBy   *int64    `json:"uploaded_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
