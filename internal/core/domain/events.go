package domain

import "time"

type EventType string

const (
	EventRequestSubmitted EventType = "request.submitted"
	EventRequestApproved  EventType = "request.approved"
	EventRequestRejected  EventType = "request.rejected"
	EventListingCreated   EventType = "listing.created"
	EventListingUpdated   EventType = "listing.updated"
	EventListingDeleted   EventType = "listing.deleted"
)

// PropertyEvent is emitted after every moderation step and direct change.
type PropertyEvent struct {
	Type               EventType
	PropertyID         string
	OriginalPropertyID string
	RequestType        RequestType
	AgentID            string
	OccurredAt         time.Time
}
