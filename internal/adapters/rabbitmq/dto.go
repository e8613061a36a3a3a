package rabbitmq

import (
	"time"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

// propertyEventDTO is the wire shape checked against the PropertyEvent schema.
type propertyEventDTO struct {
	EventType          string `json:"eventType"`
	PropertyID         string `json:"propertyId"`
	OriginalPropertyID string `json:"originalPropertyId,omitempty"`
	RequestType        string `json:"requestType"`
	AgentID            string `json:"agentId"`
	OccurredAt         string `json:"occurredAt"`
}

func toPropertyEventDTO(e domain.PropertyEvent) propertyEventDTO {
	return propertyEventDTO{
		EventType:          string(e.Type),
		PropertyID:         e.PropertyID,
		OriginalPropertyID: e.OriginalPropertyID,
		RequestType:        string(e.RequestType),
		AgentID:            e.AgentID,
		OccurredAt:         e.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
}
