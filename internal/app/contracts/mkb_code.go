package contracts

import (
	"context"

	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/dto/responses"
)

type MKBCodeRepository interface {
	Search(ctx context.Context, term string) ([]models.MKBCode, error)
}

type MKBCodeUsecase interface {
	SearchMKBCodes(ctx context.Context, term string) ([]responses.MKBCode, error)
}
