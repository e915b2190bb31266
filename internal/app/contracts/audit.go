package contracts

import (
	"context"

	"clinregistry-service/internal/app/models"
)

// AuditPublisher emits entity-write events. Implementations are best-effort;
// a failed publish never fails the originating request.
type AuditPublisher interface {
	Publish(ctx context.Context, event *models.AuditEvent)
}
