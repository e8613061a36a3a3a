package reconciler

import (
	"errors"
	"testing"
	"time"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func liveListing() *domain.Property {
	return &domain.Property{
		ID: "orig-1",
		PropertyFields: domain.PropertyFields{
			Title:         "Old Title",
			Description:   "Old description text",
			ContactName:   "Old Name",
			ContactNumber: "0770000000",
			PropertyType:  domain.PropertyTypeRent,
			District:      "Kandy",
			Price:         1000,
			Image:         "old.jpg",
		},
		Status:        domain.StatusApproved,
		RequestType:   domain.RequestAdd,
		PostedByAgent: "agent-1",
	}
}

func updateShadow() *domain.Property {
	return &domain.Property{
		ID: "shadow-1",
		PropertyFields: domain.PropertyFields{
			Title:         "New Title",
			Description:   "New description text",
			ContactName:   "New Name",
			ContactNumber: "0711234567",
			PropertyType:  domain.PropertyTypeSelling,
			District:      "Galle",
			Price:         2000,
		},
		Status:             domain.StatusPending,
		RequestType:        domain.RequestUpdate,
		OriginalPropertyID: "orig-1",
		PostedByAgent:      "agent-1",
	}
}

func TestApprove_AddFlipsStatusInPlace(t *testing.T) {
	pending := &domain.Property{ID: "p-1", Status: domain.StatusPending, RequestType: domain.RequestAdd}

	m, err := Approve(pending, nil, now)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if m.Delete != "" {
		t.Fatalf("expected no delete, got %q", m.Delete)
	}
	if m.Save == nil || m.Save.ID != "p-1" {
		t.Fatalf("expected save of p-1, got %+v", m.Save)
	}
	if m.Save.Status != domain.StatusApproved || m.Save.RequestType != domain.RequestAdd {
		t.Fatalf("unexpected state %s/%s", m.Save.Status, m.Save.RequestType)
	}
	if pending.Status != domain.StatusPending {
		t.Fatalf("input record must not be mutated")
	}
	if m.Message != MsgApproved {
		t.Fatalf("unexpected message %q", m.Message)
	}
}

func TestApprove_UpdateCopiesFieldsOntoOriginal(t *testing.T) {
	original := liveListing()
	shadow := updateShadow()

	m, err := Approve(shadow, original, now)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if m.Delete != "shadow-1" {
		t.Fatalf("expected shadow to be deleted, got %q", m.Delete)
	}
	saved := m.Save
	if saved == nil || saved.ID != "orig-1" {
		t.Fatalf("expected original to be saved, got %+v", saved)
	}
	if saved.Title != "New Title" || saved.District != "Galle" || saved.Price != 2000 || saved.PropertyType != domain.PropertyTypeSelling {
		t.Fatalf("fields not copied: %+v", saved.PropertyFields)
	}
	if saved.Image != "old.jpg" {
		t.Fatalf("image must be kept when the shadow has none, got %q", saved.Image)
	}
	if saved.Status != domain.StatusApproved || saved.RequestType != domain.RequestAdd {
		t.Fatalf("original workflow fields changed: %s/%s", saved.Status, saved.RequestType)
	}
	if original.Title != "Old Title" {
		t.Fatalf("input original must not be mutated")
	}
}

func TestApprove_UpdateReplacesImageWhenGiven(t *testing.T) {
	shadow := updateShadow()
	shadow.Image = "new.jpg"

	m, err := Approve(shadow, liveListing(), now)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if m.Save.Image != "new.jpg" {
		t.Fatalf("expected new image, got %q", m.Save.Image)
	}
}

func TestApprove_UpdateWithoutOriginal(t *testing.T) {
	m, err := Approve(updateShadow(), nil, now)
	if !errors.Is(err, domain.ErrOriginalNotFound) {
		t.Fatalf("expected ErrOriginalNotFound, got %v", err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("a missing original is a NotFound, got %v", err)
	}
	if m.Save != nil || m.Delete != "" {
		t.Fatalf("failed decision must not carry a mutation: %+v", m)
	}
}

func TestApprove_UpdateWithMismatchedOriginal(t *testing.T) {
	other := liveListing()
	other.ID = "someone-else"

	if _, err := Approve(updateShadow(), other, now); !errors.Is(err, domain.ErrOriginalNotFound) {
		t.Fatalf("expected ErrOriginalNotFound, got %v", err)
	}
}

func TestApprove_DeleteRemovesRecord(t *testing.T) {
	live := liveListing()
	live.MarkForDeletion(now)

	m, err := Approve(live, nil, now)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if m.Delete != "orig-1" || m.Save != nil {
		t.Fatalf("expected only a delete of orig-1, got %+v", m)
	}
	if m.Message != MsgDeleted {
		t.Fatalf("unexpected message %q", m.Message)
	}
}

func TestReject_DeleteRestoresListing(t *testing.T) {
	live := liveListing()
	live.MarkForDeletion(now)

	m, err := Reject(live, now)
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if m.Delete != "" {
		t.Fatalf("rejecting a delete must not delete, got %q", m.Delete)
	}
	if m.Save.Status != domain.StatusApproved || m.Save.RequestType != domain.RequestAdd {
		t.Fatalf("listing not restored: %s/%s", m.Save.Status, m.Save.RequestType)
	}
}

func TestReject_ShadowsAreDiscarded(t *testing.T) {
	for _, rt := range []domain.RequestType{domain.RequestAdd, domain.RequestUpdate} {
		pending := &domain.Property{ID: "p-" + string(rt), Status: domain.StatusPending, RequestType: rt}

		m, err := Reject(pending, now)
		if err != nil {
			t.Fatalf("%s: reject failed: %v", rt, err)
		}
		if m.Delete != pending.ID || m.Save != nil {
			t.Fatalf("%s: expected only a delete, got %+v", rt, m)
		}
	}
}

func TestDecisionsOnSettledRecordsFailNotFound(t *testing.T) {
	if _, err := Approve(nil, nil, now); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("approve(nil): expected ErrNotFound, got %v", err)
	}
	if _, err := Reject(nil, now); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("reject(nil): expected ErrNotFound, got %v", err)
	}

	live := liveListing()
	if _, err := Approve(live, nil, now); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("approve(live): expected ErrNotFound, got %v", err)
	}
	if _, err := Reject(live, now); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("reject(live): expected ErrNotFound, got %v", err)
	}
}

func TestNeedsOriginal(t *testing.T) {
	if !NeedsOriginal(updateShadow()) {
		t.Fatalf("update request needs its original")
	}
	if NeedsOriginal(&domain.Property{RequestType: domain.RequestAdd}) || NeedsOriginal(nil) {
		t.Fatalf("only update requests need an original")
	}
}
