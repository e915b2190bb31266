package mkb_codes

import (
	"context"
	"sync"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type mkbCodeUsecase struct {
	MKBCodeRepository contracts.MKBCodeRepository
	Log               *zap.Logger
}

var (
	mkbCodeUsecaseInstance contracts.MKBCodeUsecase
	onceMKBCodeUsecase     sync.Once
)

func NewMKBCodeUsecase(mkbCodeRepository contracts.MKBCodeRepository, logger *zap.Logger) contracts.MKBCodeUsecase {
	onceMKBCodeUsecase.Do(func() {
		mkbCodeUsecaseInstance = &mkbCodeUsecase{
			MKBCodeRepository: mkbCodeRepository,
			Log:               logger,
		}
	})
	return mkbCodeUsecaseInstance
}

func (uc *mkbCodeUsecase) SearchMKBCodes(ctx context.Context, term string) ([]responses.MKBCode, error) {
	codes, err := uc.MKBCodeRepository.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	response := make([]responses.MKBCode, 0, len(codes))
	for _, code := range codes {
		response = append(response, code.ConvertIntoResponse())
	}
	return response, nil
}
