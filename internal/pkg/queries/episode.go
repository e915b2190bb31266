package queries

const (
	GetAllEpisodes = `
		SELECT id, patient_id, start_date, end_date, created_at, updated_at
		FROM episodes
		ORDER BY patient_id, start_date DESC
	`

	GetEpisodesByPatientID = `
		SELECT id, patient_id, start_date, end_date, created_at, updated_at
		FROM episodes
		WHERE patient_id = $1
		ORDER BY start_date DESC
	`

	GetEpisodeByID = `
		SELECT id, patient_id, start_date, end_date, created_at, updated_at
		FROM episodes
		WHERE id = $1
	`

	InsertEpisode = `
		INSERT INTO episodes (patient_id, start_date, end_date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	UpdateEpisode = `
		UPDATE episodes
		SET patient_id = $1, start_date = $2, end_date = $3, updated_at = now()
		WHERE id = $4
		RETURNING created_at, updated_at
	`

	DeleteEpisode = `
		DELETE FROM episodes
		WHERE id = $1
	`
)
