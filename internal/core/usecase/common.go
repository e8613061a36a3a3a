package usecase

import (
	"context"
	"time"

	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
)

const (
	MsgAddSubmitted    = "Request submitted for approval."
	MsgUpdateSubmitted = "Update request submitted."
	MsgDeleteSubmitted = "Delete request submitted for approval."
	MsgListingCreated  = "Property added successfully."
	MsgListingUpdated  = "Property updated successfully."
	MsgListingDeleted  = "Property deleted successfully."
)

// Clock is injected so tests can pin timestamps.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}

// publishEvent never fails the calling operation: the store write already happened.
func publishEvent(ctx context.Context, events port.PropertyEventsPort, logger port.LoggerPort, event domain.PropertyEvent) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, event); err != nil {
		logger.Error("Failed to publish property event", err, port.Fields{
			"event_type":  string(event.Type),
			"property_id": event.PropertyID,
		})
	}
}

func eventFor(eventType domain.EventType, p *domain.Property, now time.Time) domain.PropertyEvent {
	return domain.PropertyEvent{
		Type:               eventType,
		PropertyID:         p.ID,
		OriginalPropertyID: p.OriginalPropertyID,
		RequestType:        p.RequestType,
		AgentID:            p.PostedByAgent,
		OccurredAt:         now,
	}
}
