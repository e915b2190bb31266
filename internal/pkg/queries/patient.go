package queries

const (
	GetAllPatients = `
		SELECT id, last_name, first_name, middle_name, date_of_birth,
		       clinic_id, primary_diagnosis_mkb, created_at, updated_at
		FROM patients
		ORDER BY last_name, first_name
	`

	GetPatientByID = `
		SELECT id, last_name, first_name, middle_name, date_of_birth,
		       clinic_id, primary_diagnosis_mkb, created_at, updated_at
		FROM patients
		WHERE id = $1
	`

	InsertPatient = `
		INSERT INTO patients (last_name, first_name, middle_name, date_of_birth, clinic_id, primary_diagnosis_mkb)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	UpdatePatient = `
		UPDATE patients
		SET last_name = $1, first_name = $2, middle_name = $3, date_of_birth = $4,
		    clinic_id = $5, primary_diagnosis_mkb = $6, updated_at = now()
		WHERE id = $7
		RETURNING created_at, updated_at
	`

	DeletePatient = `
		DELETE FROM patients
		WHERE id = $1
	`

	// ResearchPatientsBase is extended with dynamically composed predicate
	// clauses before execution.
	ResearchPatientsBase = `
		SELECT id, last_name, first_name, middle_name, date_of_birth,
		       clinic_id, primary_diagnosis_mkb, created_at, updated_at
		FROM patients
	`
)
