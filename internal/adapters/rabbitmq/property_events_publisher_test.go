package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

type fakeProducer struct {
	routingKey string
	msg        amqp.Publishing
	err        error
	calls      int
}

func (f *fakeProducer) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	f.calls++
	f.routingKey = routingKey
	f.msg = msg
	return f.err
}

func approvedEvent() domain.PropertyEvent {
	return domain.PropertyEvent{
		Type:               domain.EventRequestApproved,
		PropertyID:         "shadow-1",
		OriginalPropertyID: "orig-1",
		RequestType:        domain.RequestUpdate,
		AgentID:            "agent-1",
		OccurredAt:         time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPublishSendsEventWithTraceID(t *testing.T) {
	producer := &fakeProducer{}
	publisher, err := NewPropertyEventsPublisher(producer)
	if err != nil {
		t.Fatalf("publisher: %v", err)
	}

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-42")
	if err := publisher.Publish(ctx, approvedEvent()); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if producer.routingKey != "request.approved" {
		t.Fatalf("unexpected routing key %q", producer.routingKey)
	}
	if producer.msg.MessageId == "" {
		t.Fatalf("expected a message id")
	}
	if producer.msg.Headers["x-trace-id"] != "trace-42" {
		t.Fatalf("trace id header missing: %v", producer.msg.Headers)
	}
	if producer.msg.DeliveryMode != amqp.Persistent {
		t.Fatalf("events must be persistent")
	}

	var body map[string]interface{}
	if err := json.Unmarshal(producer.msg.Body, &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["originalPropertyId"] != "orig-1" || body["requestType"] != "update" || body["occurredAt"] != "2025-03-01T10:00:00Z" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestPublishRejectsEventBreakingContract(t *testing.T) {
	producer := &fakeProducer{}
	publisher, _ := NewPropertyEventsPublisher(producer)

	event := approvedEvent()
	event.AgentID = ""
	if err := publisher.Publish(context.Background(), event); err == nil {
		t.Fatalf("expected contract violation")
	}
	if producer.calls != 0 {
		t.Fatalf("invalid event must not reach the broker")
	}
}

func TestPublishWrapsProducerError(t *testing.T) {
	brokerErr := errors.New("channel closed")
	publisher, _ := NewPropertyEventsPublisher(&fakeProducer{err: brokerErr})

	if err := publisher.Publish(context.Background(), approvedEvent()); !errors.Is(err, brokerErr) {
		t.Fatalf("expected wrapped broker error, got %v", err)
	}
}

func TestToFields(t *testing.T) {
	fields := toFields("exchange", "estify", 7, "seven", "dangling")
	if fields["exchange"] != "estify" || fields["7"] != "seven" || fields["dangling"] != "(MISSING)" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}
