package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

func seedBooking(t *testing.T, s *BookingStore, b domain.Booking) string {
	t.Helper()
	if err := s.Create(context.Background(), &b); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return b.ID
}

func TestBookingStoreFiltersAndOrders(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()
	start := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	late := seedBooking(t, s, domain.Booking{PropertyID: "p-1", UserID: "u-1", StartDate: start.AddDate(0, 0, 5), Status: domain.BookingPending})
	first := seedBooking(t, s, domain.Booking{PropertyID: "p-1", UserID: "u-2", StartDate: start, Status: domain.BookingConfirmed})
	second := seedBooking(t, s, domain.Booking{PropertyID: "p-1", UserID: "u-1", StartDate: start, Status: domain.BookingPending})
	seedBooking(t, s, domain.Booking{PropertyID: "p-1", UserID: "u-3", StartDate: start, Status: domain.BookingRejected})
	seedBooking(t, s, domain.Booking{PropertyID: "p-2", UserID: "u-1", StartDate: start, Status: domain.BookingPending})

	got, err := s.FindMany(ctx, domain.BookingFilter{PropertyID: "p-1", ExcludeRejected: true})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(got) != 3 || got[0].ID != first || got[1].ID != second || got[2].ID != late {
		t.Fatalf("expected start date then insertion order, got %+v", got)
	}

	rejected, _ := s.FindMany(ctx, domain.BookingFilter{PropertyID: "p-1", Status: domain.BookingRejected, ExcludeRejected: true})
	if len(rejected) != 1 || rejected[0].UserID != "u-3" {
		t.Fatalf("explicit status must win over exclusion, got %+v", rejected)
	}

	mine, _ := s.FindMany(ctx, domain.BookingFilter{UserID: "u-1"})
	if len(mine) != 3 {
		t.Fatalf("expected 3 bookings for u-1, got %d", len(mine))
	}
}

func TestBookingStoreUnknownIDIsNotFound(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	if _, err := s.FindByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("find: expected NotFound, got %v", err)
	}
	if err := s.UpdateByID(ctx, "missing", &domain.Booking{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("update: expected NotFound, got %v", err)
	}
	if err := s.DeleteByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("delete: expected NotFound, got %v", err)
	}
}

func TestBookingStoreUpdateKeepsCreatedAt(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	id := seedBooking(t, s, domain.Booking{UserID: "u-1", Status: domain.BookingPending, CreatedAt: created})

	if err := s.UpdateByID(ctx, id, &domain.Booking{UserID: "u-1", Status: domain.BookingConfirmed}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ := s.FindByID(ctx, id)
	if got.Status != domain.BookingConfirmed || !got.CreatedAt.Equal(created) || got.ID != id {
		t.Fatalf("unexpected record after update: %+v", got)
	}
}
