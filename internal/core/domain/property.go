package domain

import (
	"strings"
	"time"
)

// Status - moderation status of a property record.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved
}

// RequestType - what a pending record asks the admin to do.
type RequestType string

const (
	RequestAdd    RequestType = "add"
	RequestUpdate RequestType = "update"
	RequestDelete RequestType = "delete"
)

func (t RequestType) IsValid() bool {
	switch t {
	case RequestAdd, RequestUpdate, RequestDelete:
		return true
	}
	return false
}

// PropertyType - deal type of a listing.
type PropertyType string

const (
	PropertyTypeRent    PropertyType = "rent"
	PropertyTypeSelling PropertyType = "selling"
)

func (t PropertyType) IsValid() bool {
	return t == PropertyTypeRent || t == PropertyTypeSelling
}

// PropertyFields - the content part of a property, everything an agent can edit.
type PropertyFields struct {
	Title         string
	Description   string
	ContactName   string
	ContactNumber string
	PropertyType  PropertyType
	District      string
	Price         float64
	Image         string
}

// Normalize trims the fields that are stored trimmed.
func (f PropertyFields) Normalize() PropertyFields {
	f.Title = strings.TrimSpace(f.Title)
	f.ContactName = strings.TrimSpace(f.ContactName)
	f.District = strings.TrimSpace(f.District)
	f.Image = strings.TrimSpace(f.Image)
	return f
}

// PropertyPatch - partial update of the content fields. Nil means "keep".
type PropertyPatch struct {
	Title         *string
	Description   *string
	ContactName   *string
	ContactNumber *string
	PropertyType  *PropertyType
	District      *string
	Price         *float64
	Image         *string
}

// Property - one live listing or one pending change request against a listing.
// Both live in the same collection and differ by Status/RequestType.
type Property struct {
	ID string
	PropertyFields

	Status             Status
	RequestType        RequestType
	OriginalPropertyID string
	PostedByAgent      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLive reports whether the record is a listing visible to end users.
func (p *Property) IsLive() bool {
	return p.Status == StatusApproved && p.RequestType == RequestAdd
}

func (p *Property) IsPending() bool {
	return p.Status == StatusPending
}

func (p *Property) OwnedBy(agentID string) bool {
	return p.PostedByAgent != "" && p.PostedByAgent == agentID
}

// NewAddRequest builds a pending shadow record for a brand new listing.
func NewAddRequest(fields PropertyFields, agentID string, now time.Time) *Property {
	return &Property{
		PropertyFields: fields.Normalize(),
		Status:         StatusPending,
		RequestType:    RequestAdd,
		PostedByAgent:  agentID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NewUpdateRequest builds a pending shadow record that would overwrite originalID on approval.
func NewUpdateRequest(fields PropertyFields, originalID, agentID string, now time.Time) *Property {
	return &Property{
		PropertyFields:     fields.Normalize(),
		Status:             StatusPending,
		RequestType:        RequestUpdate,
		OriginalPropertyID: originalID,
		PostedByAgent:      agentID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// NewLiveListing builds a listing that skips moderation.
func NewLiveListing(fields PropertyFields, agentID string, now time.Time) *Property {
	return &Property{
		PropertyFields: fields.Normalize(),
		Status:         StatusApproved,
		RequestType:    RequestAdd,
		PostedByAgent:  agentID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// MarkForDeletion flips a live listing into a pending delete request in place.
func (p *Property) MarkForDeletion(now time.Time) {
	p.Status = StatusPending
	p.RequestType = RequestDelete
	p.UpdatedAt = now
}

// Apply merges a patch into the content fields. A nil or blank string keeps the current value.
func (f PropertyFields) Apply(patch PropertyPatch) PropertyFields {
	keep := func(dst *string, v *string) {
		if v != nil && strings.TrimSpace(*v) != "" {
			*dst = *v
		}
	}
	keep(&f.Title, patch.Title)
	keep(&f.Description, patch.Description)
	keep(&f.ContactName, patch.ContactName)
	keep(&f.ContactNumber, patch.ContactNumber)
	keep(&f.District, patch.District)
	keep(&f.Image, patch.Image)
	if patch.PropertyType != nil && *patch.PropertyType != "" {
		f.PropertyType = *patch.PropertyType
	}
	if patch.Price != nil {
		f.Price = *patch.Price
	}
	return f.Normalize()
}
