package contracts

import (
	"context"

	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Refresh(ctx context.Context, request *requests.RefreshToken) (*responses.RefreshToken, error)
	Logout(ctx context.Context, sessionData string) error
}
