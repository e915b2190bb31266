package contracts

import (
	"context"

	"clinregistry-service/internal/app/models"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
