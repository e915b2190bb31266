package contracts

import (
	"context"

	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/dto/responses"
)

type ParameterRepository interface {
	FindAll(ctx context.Context) ([]models.ParameterCode, error)
	FindByCode(ctx context.Context, code string) (*models.ParameterCode, error)
}

type ParameterUsecase interface {
	FindAllParameters(ctx context.Context) ([]responses.ParameterCode, error)
}
