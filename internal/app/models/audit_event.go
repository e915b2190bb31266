package models

import "time"

// AuditEvent is published to the audit queue after every entity write.
type AuditEvent struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID int64     `json:"resource_id"`
	ActorID    int64     `json:"actor_id"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}
