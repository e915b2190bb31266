package audit

import (
	"context"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type auditPublisher struct {
	ch        *amqp.Channel
	queueName string
	log       *zap.Logger
}

// NewAuditPublisher declares the durable audit queue and returns a
// best-effort publisher: failures are logged, never propagated.
func NewAuditPublisher(conn *amqp.Connection, queueName string, log *zap.Logger) (contracts.AuditPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	return &auditPublisher{
		ch:        ch,
		queueName: queueName,
		log:       log,
	}, nil
}

func (p *auditPublisher) Publish(ctx context.Context, event *models.AuditEvent) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("auditPublisher.Publish failed to marshal event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	err = p.ch.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		p.log.Error("auditPublisher.Publish failed to publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("resource", event.Resource),
			zap.Error(err),
		)
	}
}
