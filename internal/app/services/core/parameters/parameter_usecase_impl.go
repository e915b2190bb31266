package parameters

import (
	"context"
	"sync"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type parameterUsecase struct {
	ParameterRepository contracts.ParameterRepository
	Log                 *zap.Logger
}

var (
	parameterUsecaseInstance contracts.ParameterUsecase
	onceParameterUsecase     sync.Once
)

func NewParameterUsecase(parameterRepository contracts.ParameterRepository, logger *zap.Logger) contracts.ParameterUsecase {
	onceParameterUsecase.Do(func() {
		parameterUsecaseInstance = &parameterUsecase{
			ParameterRepository: parameterRepository,
			Log:                 logger,
		}
	})
	return parameterUsecaseInstance
}

func (uc *parameterUsecase) FindAllParameters(ctx context.Context) ([]responses.ParameterCode, error) {
	parameters, err := uc.ParameterRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.ParameterCode, 0, len(parameters))
	for _, parameter := range parameters {
		response = append(response, parameter.ConvertIntoResponse())
	}
	return response, nil
}
