package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MaryChris21/Estify/internal/constants"
	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/contracts"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// MessagePublisher is satisfied by *rabbitmq_producer.Publisher.
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// PropertyEventsPublisher implements PropertyEventsPort. The routing key is the event type.
type PropertyEventsPublisher struct {
	producer MessagePublisher
}

var _ port.PropertyEventsPort = (*PropertyEventsPublisher)(nil)

func NewPropertyEventsPublisher(producer MessagePublisher) (*PropertyEventsPublisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &PropertyEventsPublisher{producer: producer}, nil
}

func (a *PropertyEventsPublisher) Publish(ctx context.Context, event domain.PropertyEvent) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "PropertyEventsPublisher",
		"routing_key": string(event.Type),
		"property_id": event.PropertyID,
	})

	body, err := json.Marshal(toPropertyEventDTO(event))
	if err != nil {
		return fmt.Errorf("failed to marshal property event: %w", err)
	}
	if err := contracts.ValidateEvent(contracts.PropertyEventSchema, contracts.SchemaVersion, body); err != nil {
		adapterLogger.Error("Property event does not match its contract", err, nil)
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
		Headers:      amqp.Table{"x-event-version": contracts.SchemaVersion},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers[constants.TraceIDAMQPHeader] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, string(event.Type), msg); err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to publish %s for property %s: %w", event.Type, event.PropertyID, err)
	}

	adapterLogger.Debug("Property event published", nil)
	return nil
}

// NoopEventsPublisher is used when RABBITMQ_ENABLED=false.
type NoopEventsPublisher struct{}

func (NoopEventsPublisher) Publish(ctx context.Context, event domain.PropertyEvent) error {
	contextkeys.LoggerFromContext(ctx).Debug("Event publishing disabled, dropping event", port.Fields{
		"event_type":  string(event.Type),
		"property_id": event.PropertyID,
	})
	return nil
}
