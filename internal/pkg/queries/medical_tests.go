package queries

const (
	GetMedicalTestsByPatientID = `
		SELECT id, patient_id, test_name, test_date, uploaded_file, score,
		       result_text, uploaded_by, created_at, updated_at
		FROM medical_tests
		WHERE patient_id = $1
		ORDER BY test_date DESC
	`

	GetMedicalTestByID = `
		SELECT id, patient_id, test_name, test_date, uploaded_file, score,
		       result_text, uploaded_by, created_at, updated_at
		FROM medical_tests
		WHERE id = $1
	`

	InsertMedicalTest = `
		INSERT INTO medical_tests (patient_id, test_name, test_date, uploaded_file, score, result_text, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	UpdateMedicalTest = `
		UPDATE medical_tests
		SET patient_id = $1, test_name = $2, test_date = $3, uploaded_file = $4,
		    score = $5, result_text = $6, updated_at = now()
		WHERE id = $7
		RETURNING created_at, updated_at
	`

	DeleteMedicalTest = `
		DELETE FROM medical_tests
		WHERE id = $1
	`
)
