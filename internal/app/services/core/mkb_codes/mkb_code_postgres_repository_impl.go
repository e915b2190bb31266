package mkb_codes

import (
	"context"
	"database/sql"
	"sync"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/exceptions"
	"clinregistry-service/internal/pkg/queries"
	"clinregistry-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type mkbCodePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	mkbCodePostgresRepositoryInstance contracts.MKBCodeRepository
	onceMKBCodePostgresRepository     sync.Once
)

func NewMKBCodePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.MKBCodeRepository {
	onceMKBCodePostgresRepository.Do(func() {
		instance := &mkbCodePostgresRepository{
			DB:  db,
			Log: logger,
		}
		mkbCodePostgresRepositoryInstance = instance
	})
	return mkbCodePostgresRepositoryInstance
}

func (r *mkbCodePostgresRepository) Search(ctx context.Context, term string) ([]models.MKBCode, error) {
	rows, err := r.DB.QueryContext(ctx, queries.SearchMKBCodes, utils.EscapeLikeTerm(term))
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var codes []models.MKBCode
	for rows.Next() {
		var code models.MKBCode
		if err := rows.Scan(&code.Code, &code.Name); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return codes, nil
}
