package observations

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/exceptions"
	"clinregistry-service/internal/pkg/queries"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const pgForeignKeyViolation = "23503"

type observationPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	observationPostgresRepositoryInstance contracts.ObservationRepository
	onceObservationPostgresRepository     sync.Once
)

func NewObservationPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ObservationRepository {
	onceObservationPostgresRepository.Do(func() {
		instance := &observationPostgresRepository{
			DB:  db,
			Log: logger,
		}
		observationPostgresRepositoryInstance = instance
	})
	return observationPostgresRepositoryInstance
}

func (r *observationPostgresRepository) FindFiltered(ctx context.Context, filter contracts.ObservationListFilter) ([]models.Observation, error) {
	args := []interface{}{filter.PatientID}
	clauses := []string{"o.patient_id = $1"}

	if filter.ParameterCode != nil {
		args = append(args, *filter.ParameterCode)
		clauses = append(clauses, fmt.Sprintf("o.parameter_code = $%d", len(args)))
	}
	if filter.EpisodeID != nil {
		args = append(args, *filter.EpisodeID)
		clauses = append(clauses, fmt.Sprintf("o.episode_id = $%d", len(args)))
	}

	query := queries.GetObservationsFilteredBase +
		" WHERE " + strings.Join(clauses, " AND ") +
		queries.GetObservationsDefaultOrder

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	return scanObservations(rows)
}

func (r *observationPostgresRepository) FindByID(ctx context.Context, observationID int64) (*models.Observation, error) {
	var observation models.Observation
	err := scanObservationRow(r.DB.QueryRowContext(ctx, queries.GetObservationByID, observationID), &observation)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &observation, nil
}

func (r *observationPostgresRepository) FindDynamics(ctx context.Context, patientID int64, parameterCodes []string) ([]models.Observation, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetPatientDynamics, patientID, pq.Array(parameterCodes))
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	return scanObservations(rows)
}

// FindForPatients fetches the observations of every patient in the filter
// with a single ANY-array query instead of one query per patient.
func (r *observationPostgresRepository) FindForPatients(ctx context.Context, filter contracts.ResearchObservationFilter) ([]models.Observation, error) {
	args := []interface{}{pq.Array(filter.PatientIDs), pq.Array(filter.ParameterCodes)}
	var clauses []string

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		clauses = append(clauses, fmt.Sprintf("o.timestamp >= $%d", len(args)))
	}
	if filter.EndBefore != nil {
		args = append(args, *filter.EndBefore)
		clauses = append(clauses, fmt.Sprintf("o.timestamp < $%d", len(args)))
	}

	query := queries.GetObservationsForPatientsBase
	if len(clauses) > 0 {
		query += " AND " + strings.Join(clauses, " AND ")
	}
	query += queries.GetObservationsResearchOrder

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	return scanObservations(rows)
}

func (r *observationPostgresRepository) Insert(ctx context.Context, observation *models.Observation) error {
	err := r.DB.QueryRowContext(ctx, queries.InsertObservation,
		observation.PatientID,
		observation.ParameterCode,
		observation.Timestamp,
		observation.Value,
		observation.ValueNumeric,
		observation.RecordedBy,
		observation.EpisodeID,
	).Scan(&observation.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgForeignKeyViolation {
			return exceptions.ErrDataNotFound(err, constvars.ResourceEpisode)
		}
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *observationPostgresRepository) Update(ctx context.Context, observation *models.Observation) error {
	result, err := r.DB.ExecContext(ctx, queries.UpdateObservation,
		observation.PatientID,
		observation.ParameterCode,
		observation.Timestamp,
		observation.Value,
		observation.ValueNumeric,
		observation.EpisodeID,
		observation.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgForeignKeyViolation {
			return exceptions.ErrDataNotFound(err, constvars.ResourceEpisode)
		}
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		return exceptions.ErrDataNotFound(nil, constvars.ResourceObservation)
	}
	return nil
}

func (r *observationPostgresRepository) Delete(ctx context.Context, observationID int64) error {
	result, err := r.DB.ExecContext(ctx, queries.DeleteObservation, observationID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrDataNotFound(nil, constvars.ResourceObservation)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanObservationRow(row rowScanner, observation *models.Observation) error {
	return row.Scan(
		&observation.ID,
		&observation.PatientID,
		&observation.ParameterCode,
		&observation.Timestamp,
		&observation.Value,
		&observation.ValueNumeric,
		&observation.RecordedBy,
		&observation.EpisodeID,
		&observation.ParameterName,
		&observation.ParameterUnit,
	)
}

func scanObservations(rows *sql.Rows) ([]models.Observation, error) {
	var observations []models.Observation
	for rows.Next() {
		var observation models.Observation
		if err := scanObservationRow(rows, &observation); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		observations = append(observations, observation)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return observations, nil
}
