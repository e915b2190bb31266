package parameters

import (
	"context"
	"database/sql"
	"sync"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/exceptions"
	"clinregistry-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type parameterPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	parameterPostgresRepositoryInstance contracts.ParameterRepository
	onceParameterPostgresRepository     sync.Once
)

func NewParameterPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ParameterRepository {
	onceParameterPostgresRepository.Do(func() {
		instance := &parameterPostgresRepository{
			DB:  db,
			Log: logger,
		}
		parameterPostgresRepositoryInstance = instance
	})
	return parameterPostgresRepositoryInstance
}

func (r *parameterPostgresRepository) FindAll(ctx context.Context) ([]models.ParameterCode, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllParameterCodes)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var parameters []models.ParameterCode
	for rows.Next() {
		var parameter models.ParameterCode
		if err := rows.Scan(
			&parameter.Code,
			&parameter.Name,
			&parameter.Unit,
			&parameter.Description,
			&parameter.IsNumeric,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		parameters = append(parameters, parameter)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return parameters, nil
}

func (r *parameterPostgresRepository) FindByCode(ctx context.Context, code string) (*models.ParameterCode, error) {
	var parameter models.ParameterCode
	err := r.DB.QueryRowContext(ctx, queries.GetParameterCodeByCode, code).Scan(
		&parameter.Code,
		&parameter.Name,
		&parameter.Unit,
		&parameter.Description,
		&parameter.IsNumeric,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &parameter, nil
}
