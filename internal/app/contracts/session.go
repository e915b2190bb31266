package contracts

import (
	"context"

	"clinregistry-service/internal/app/models"
)

// SessionService resolves the opaque session payload stored in redis into
// the acting-user identity carried through write operations.
type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSessionData(ctx context.Context, sessionID string) (string, error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
