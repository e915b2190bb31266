package patients

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

const pgUniqueViolation = "23505"

type patientPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	patientPostgresRepositoryInstance contracts.PatientRepository
	oncePatientPostgresRepository     sync.Once
)

func NewPatientPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PatientRepository {
	oncePatientPostgresRepository.Do(func() {
		instance := &patientPostgresRepository{
			DB:  db,
			Log: logger,
		}
		patientPostgresRepositoryInstance = instance
	})
	return patientPostgresRepositoryInstance
}

func (r *patientPostgresRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllPatients)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	return scanPatients(rows)
}

func (r *patientPostgresRepository) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	var patient models.Patient
	err := r.DB.QueryRowContext(ctx, queries.GetPatientByID, patientID).Scan(
		&patient.ID,
		&patient.LastName,
		&patient.FirstName,
		&patient.MiddleName,
		&patient.DateOfBirth,
		&patient.ClinicID,
		&patient.PrimaryDiagnosisMKB,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &patient, nil
}

// FindForResearch composes the optional predicates into a single WHERE
// clause joined with AND, keeping the base query untouched when no filter
// is set.
func (r *patientPostgresRepository) FindForResearch(ctx context.Context, filter contracts.ResearchPatientFilter) ([]models.Patient, error) {
	var clauses []string
	var args []interface{}

	if filter.DiagnosisMKB != nil {
		args = append(args, *filter.DiagnosisMKB)
		clauses = append(clauses, fmt.Sprintf("UPPER(primary_diagnosis_mkb) = UPPER($%d)", len(args)))
	}
	if filter.LatestBirthDate != nil {
		args = append(args, *filter.LatestBirthDate)
		clauses = append(clauses, fmt.Sprintf("date_of_birth <= $%d", len(args)))
	}
	if filter.EarliestBirthDate != nil {
		args = append(args, *filter.EarliestBirthDate)
		clauses = append(clauses, fmt.Sprintf("date_of_birth >= $%d", len(args)))
	}

	query := queries.ResearchPatientsBase
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY last_name, first_name"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	return scanPatients(rows)
}

func (r *patientPostgresRepository) Insert(ctx context.Context, patient *models.Patient) error {
	err := r.DB.QueryRowContext(ctx, queries.InsertPatient,
		patient.LastName,
		patient.FirstName,
		patient.MiddleName,
		patient.DateOfBirth,
		patient.ClinicID,
		patient.PrimaryDiagnosisMKB,
	).Scan(&patient.ID, &patient.CreatedAt, &patient.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return exceptions.ErrClinicIDAlreadyUsed(err)
		}
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *patientPostgresRepository) Update(ctx context.Context, patient *models.Patient) error {
	err := r.DB.QueryRowContext(ctx, queries.UpdatePatient,
		patient.LastName,
		patient.FirstName,
		patient.MiddleName,
		patient.DateOfBirth,
		patient.ClinicID,
		patient.PrimaryDiagnosisMKB,
		patient.ID,
	).Scan(&patient.CreatedAt, &patient.UpdatedAt)
	if err == sql.ErrNoRows {
		return exceptions.ErrDataNotFound(err, constvars.ResourcePatient)
	} else if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return exceptions.ErrClinicIDAlreadyUsed(err)
		}
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

// Delete relies on ON DELETE CASCADE to remove the patient's episodes,
// observations, and medical tests in the same statement.
func (r *patientPostgresRepository) Delete(ctx context.Context, patientID int64) error {
	result, err := r.DB.ExecContext(ctx, queries.DeletePatient, patientID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrDataNotFound(nil, constvars.ResourcePatient)
	}
	return nil
}

func scanPatients(rows *sql.Rows) ([]models.Patient, error) {
	var patients []models.Patient
	for rows.Next() {
		var patient models.Patient
		if err := rows.Scan(
			&patient.ID,
			&patient.LastName,
			&patient.FirstName,
			&patient.MiddleName,
			&patient.DateOfBirth,
			&patient.ClinicID,
			&patient.PrimaryDiagnosisMKB,
			&patient.CreatedAt,
			&patient.UpdatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return patients, nil
}
