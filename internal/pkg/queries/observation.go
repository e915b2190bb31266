package queries

const (
	observationSelect = `
		SELECT o.id, o.patient_id, o.parameter_code, o.timestamp, o.value,
		       o.value_numeric, o.recorded_by, o.episode_id, p.name, p.unit
		FROM observations o
		JOIN parameter_codes p ON p.code = o.parameter_code
	`

	GetObservationByID = observationSelect + `
		WHERE o.id = $1
	`

	// GetObservationsFiltered is extended with dynamically composed
	// predicate clauses; ordering mirrors the store's default listing.
	GetObservationsFilteredBase = observationSelect

	GetObservationsDefaultOrder = `
		ORDER BY o.patient_id, o.parameter_code, o.timestamp DESC
	`

	GetPatientDynamics = observationSelect + `
		WHERE o.patient_id = $1 AND o.parameter_code = ANY($2)
		ORDER BY o.timestamp ASC
	`

	// GetObservationsForPatients batches the research observation fetch for
	// the whole surviving patient set in one round trip.
	GetObservationsForPatientsBase = observationSelect + `
		WHERE o.patient_id = ANY($1) AND o.parameter_code = ANY($2)
	`

	GetObservationsResearchOrder = `
		ORDER BY o.patient_id, o.timestamp ASC
	`

	InsertObservation = `
		INSERT INTO observations (patient_id, parameter_code, timestamp, value, value_numeric, recorded_by, episode_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	UpdateObservation = `
		UPDATE observations
		SET patient_id = $1, parameter_code = $2, timestamp = $3, value = $4,
		    value_numeric = $5, episode_id = $6
		WHERE id = $7
	`

	DeleteObservation = `
		DELETE FROM observations
		WHERE id = $1
	`
)
