// Package reconciler decides what an admin decision on a pending property record does to the store.
// It performs no I/O: callers load the records, apply the returned Mutation and report its Message.
package reconciler

import (
	"fmt"
	"time"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

const (
	MsgDeleted          = "Property deleted."
	MsgUpdated          = "Property updated successfully."
	MsgApproved         = "Property approved."
	MsgDeleteRejected   = "Delete request rejected. Property restored."
	MsgRequestDiscarded = "Request rejected and deleted."
)

// Mutation is the store change for one decision.
// Save is written first (update by id), then Delete is removed. Either may be empty.
type Mutation struct {
	Save    *domain.Property
	Delete  string
	Message string
}

// NeedsOriginal reports whether Approve must be given the record the request points at.
func NeedsOriginal(pending *domain.Property) bool {
	return pending != nil && pending.RequestType == domain.RequestUpdate
}

// Approve resolves an approval of pending. original is only consulted for update requests
// and may be nil when it could not be found.
func Approve(pending, original *domain.Property, now time.Time) (Mutation, error) {
	if err := checkPending(pending); err != nil {
		return Mutation{}, err
	}

	switch pending.RequestType {
	case domain.RequestDelete:
		return Mutation{Delete: pending.ID, Message: MsgDeleted}, nil

	case domain.RequestUpdate:
		if original == nil || original.ID == "" || original.ID != pending.OriginalPropertyID {
			return Mutation{}, fmt.Errorf("%w: %s", domain.ErrOriginalNotFound, pending.OriginalPropertyID)
		}
		merged := *original
		merged.Title = pending.Title
		merged.Description = pending.Description
		merged.ContactName = pending.ContactName
		merged.ContactNumber = pending.ContactNumber
		merged.PropertyType = pending.PropertyType
		merged.District = pending.District
		merged.Price = pending.Price
		if pending.Image != "" {
			merged.Image = pending.Image
		}
		merged.UpdatedAt = now
		return Mutation{Save: &merged, Delete: pending.ID, Message: MsgUpdated}, nil

	default:
		approved := *pending
		approved.Status = domain.StatusApproved
		approved.RequestType = domain.RequestAdd
		approved.UpdatedAt = now
		return Mutation{Save: &approved, Message: MsgApproved}, nil
	}
}

// Reject resolves a rejection of pending.
func Reject(pending *domain.Property, now time.Time) (Mutation, error) {
	if err := checkPending(pending); err != nil {
		return Mutation{}, err
	}

	switch pending.RequestType {
	case domain.RequestDelete:
		// the record is the live listing itself, so undo the in-place flip
		restored := *pending
		restored.Status = domain.StatusApproved
		restored.RequestType = domain.RequestAdd
		restored.UpdatedAt = now
		return Mutation{Save: &restored, Message: MsgDeleteRejected}, nil
	default:
		return Mutation{Delete: pending.ID, Message: MsgRequestDiscarded}, nil
	}
}

// checkPending treats a missing record and one with no outstanding request the same way,
// so a repeated decision fails instead of touching a settled record.
func checkPending(pending *domain.Property) error {
	if pending == nil {
		return domain.ErrNotFound
	}
	if !pending.IsPending() {
		return fmt.Errorf("%w: %s has no pending request", domain.ErrNotFound, pending.ID)
	}
	return nil
}
