package medical_tests

import (
	"context"
	"database/sql"
	"sync"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/exceptions"
	"clinregistry-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type medicalTestPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	medicalTestPostgresRepositoryInstance contracts.MedicalTestRepository
	onceMedicalTestPostgresRepository     sync.Once
)

func NewMedicalTestPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.MedicalTestRepository {
	onceMedicalTestPostgresRepository.Do(func() {
		instance := &medicalTestPostgresRepository{
			DB:  db,
			Log: logger,
		}
		medicalTestPostgresRepositoryInstance = instance
	})
	return medicalTestPostgresRepositoryInstance
}

func (r *medicalTestPostgresRepository) FindByPatientID(ctx context.Context, patientID int64) ([]models.MedicalTest, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetMedicalTestsByPatientID, patientID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var medicalTests []models.MedicalTest
	for rows.Next() {
		var medicalTest models.MedicalTest
		if err := rows.Scan(
			&medicalTest.ID,
			&medicalTest.PatientID,
			&medicalTest.TestName,
			&medicalTest.TestDate,
			&medicalTest.UploadedFile,
			&medicalTest.Score,
			&medicalTest.ResultText,
			&medicalTest.UploadedBy,
			&medicalTest.CreatedAt,
			&medicalTest.UpdatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		medicalTests = append(medicalTests, medicalTest)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return medicalTests, nil
}

func (r *medicalTestPostgresRepository) FindByID(ctx context.Context, medicalTestID int64) (*models.MedicalTest, error) {
	var medicalTest models.MedicalTest
	err := r.DB.QueryRowContext(ctx, queries.GetMedicalTestByID, medicalTestID).Scan(
		&medicalTest.ID,
		&medicalTest.PatientID,
		&medicalTest.TestName,
		&medicalTest.TestDate,
		&medicalTest.UploadedFile,
		&medicalTest.Score,
		&medicalTest.ResultText,
		&medicalTest.UploadedBy,
		&medicalTest.CreatedAt,
		&medicalTest.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &medicalTest, nil
}

func (r *medicalTestPostgresRepository) Insert(ctx context.Context, medicalTest *models.MedicalTest) error {
	err := r.DB.QueryRowContext(ctx, queries.InsertMedicalTest,
		medicalTest.PatientID,
		medicalTest.TestName,
		medicalTest.TestDate,
		medicalTest.UploadedFile,
		medicalTest.Score,
		medicalTest.ResultText,
		medicalTest.UploadedBy,
	).Scan(&medicalTest.ID, &medicalTest.CreatedAt, &medicalTest.UpdatedAt)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *medicalTestPostgresRepository) Update(ctx context.Context, medicalTest *models.MedicalTest) error {
	err := r.DB.QueryRowContext(ctx, queries.UpdateMedicalTest,
		medicalTest.PatientID,
		medicalTest.TestName,
		medicalTest.TestDate,
		medicalTest.UploadedFile,
		medicalTest.Score,
		medicalTest.ResultText,
		medicalTest.ID,
	).Scan(&medicalTest.CreatedAt, &medicalTest.UpdatedAt)
	if err == sql.ErrNoRows {
		return exceptions.ErrDataNotFound(err, constvars.ResourceMedicalTest)
	} else if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *medicalTestPostgresRepository) Delete(ctx context.Context, medicalTestID int64) error {
	result, err := r.DB.ExecContext(ctx, queries.DeleteMedicalTest, medicalTestID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrDataNotFound(nil, constvars.ResourceMedicalTest)
	}
	return nil
}
