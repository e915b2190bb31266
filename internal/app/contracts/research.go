package contracts

import (
	"context"

	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/dto/responses"
)

type ResearchUsecase interface {
	Query(ctx context.Context, request *requests.ResearchQuery) (*responses.ResearchReport, error)
}
