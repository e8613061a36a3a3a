package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MaryChris21/Estify/internal/adapters/memory"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/usecase"
)

type bookingHarness struct {
	properties *memory.PropertyStore
	bookings   *memory.BookingStore

	create  *usecase.CreateBookingUseCase
	list    *usecase.ListBookingsUseCase
	slots   *usecase.ListPropertyBookingsUseCase
	get     *usecase.GetBookingUseCase
	update  *usecase.UpdateBookingUseCase
	remove  *usecase.DeleteBookingUseCase
	confirm *usecase.DecideBookingUseCase
	reject  *usecase.DecideBookingUseCase
}

func newBookingHarness() *bookingHarness {
	properties := memory.NewPropertyStore()
	bookings := memory.NewBookingStore()
	return &bookingHarness{
		properties: properties,
		bookings:   bookings,
		create:     usecase.NewCreateBookingUseCase(bookings, properties, clock),
		list:       usecase.NewListBookingsUseCase(bookings),
		slots:      usecase.NewListPropertyBookingsUseCase(bookings),
		get:        usecase.NewGetBookingUseCase(bookings),
		update:     usecase.NewUpdateBookingUseCase(bookings, clock),
		remove:     usecase.NewDeleteBookingUseCase(bookings),
		confirm:    usecase.NewConfirmBookingUseCase(bookings, clock),
		reject:     usecase.NewRejectBookingUseCase(bookings, clock),
	}
}

func (h *bookingHarness) seed(t *testing.T, p *domain.Property) string {
	t.Helper()
	if err := h.properties.Create(context.Background(), p); err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return p.ID
}

func beachHouse() domain.PropertyFields {
	fields := seaViewVilla()
	fields.Title = "Beach House"
	fields.PropertyType = domain.PropertyTypeRent
	fields.Price = 25000
	return fields
}

func day(d int) time.Time {
	return time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC)
}

func (h *bookingHarness) book(t *testing.T, userID, propertyID string, from, to int) *domain.Booking {
	t.Helper()
	b, err := h.create.Execute(context.Background(), userID, propertyID, day(from), day(to))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}

func TestCreateBookingCopiesListingPrice(t *testing.T) {
	h := newBookingHarness()
	propertyID := h.seed(t, domain.NewLiveListing(beachHouse(), "agent-1", fixedNow))

	b := h.book(t, "user-1", propertyID, 10, 14)
	if b.ID == "" || b.Status != domain.BookingPending {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if b.Price != 25000 || b.PropertyID != propertyID || b.UserID != "user-1" {
		t.Fatalf("booking must copy the listing: %+v", b)
	}
	if !b.CreatedAt.Equal(fixedNow) {
		t.Fatalf("expected clock time, got %v", b.CreatedAt)
	}
}

func TestCreateBookingNeedsLiveRentListing(t *testing.T) {
	h := newBookingHarness()
	ctx := context.Background()
	forSale := h.seed(t, domain.NewLiveListing(seaViewVilla(), "agent-1", fixedNow))
	pending := h.seed(t, domain.NewAddRequest(beachHouse(), "agent-1", fixedNow))

	for name, id := range map[string]string{"selling": forSale, "pending": pending, "missing": "nope"} {
		_, err := h.create.Execute(ctx, "user-1", id, day(1), day(2))
		if !errors.Is(err, domain.ErrNotRentable) {
			t.Fatalf("%s: expected ErrNotRentable, got %v", name, err)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("%s: ErrNotRentable must report NotFound", name)
		}
	}
	if h.bookings.Len() != 0 {
		t.Fatalf("nothing must be written, store has %d", h.bookings.Len())
	}
}

func TestCreateBookingValidatesDates(t *testing.T) {
	h := newBookingHarness()
	propertyID := h.seed(t, domain.NewLiveListing(beachHouse(), "agent-1", fixedNow))

	_, err := h.create.Execute(context.Background(), "user-1", propertyID, day(5), day(3))
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Fields["endDate"] == "" {
		t.Fatalf("expected endDate validation error, got %v", err)
	}
	_, err = h.create.Execute(context.Background(), "user-1", propertyID, time.Time{}, day(3))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing start, got %v", err)
	}
}

func TestListBookingsScopesNonAdmins(t *testing.T) {
	h := newBookingHarness()
	ctx := context.Background()
	propertyID := h.seed(t, domain.NewLiveListing(beachHouse(), "agent-1", fixedNow))
	h.book(t, "user-1", propertyID, 10, 12)
	h.book(t, "user-2", propertyID, 3, 5)

	mine, err := h.list.Execute(ctx, domain.Claims{UserID: "user-1", Role: domain.RoleUser}, domain.BookingFilter{UserID: "user-2"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != "user-1" {
		t.Fatalf("non-admin must only see own bookings, got %+v", mine)
	}

	all, _ := h.list.Execute(ctx, domain.Claims{UserID: "admin-1", Role: domain.RoleAdmin}, domain.BookingFilter{})
	if len(all) != 2 || all[0].UserID != "user-2" {
		t.Fatalf("admin must see all bookings ordered by start date, got %+v", all)
	}
}

func TestPropertyBookingsHideRejected(t *testing.T) {
	h := newBookingHarness()
	ctx := context.Background()
	propertyID := h.seed(t, domain.NewLiveListing(beachHouse(), "agent-1", fixedNow))
	kept := h.book(t, "user-1", propertyID, 10, 12)
	dropped := h.book(t, "user-2", propertyID, 3, 5)
	if _, err := h.reject.Execute(ctx, dropped.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}

	slots, err := h.slots.Execute(ctx, propertyID, "")
	if err != nil {
		t.Fatalf("slots: %v", err)
	}
	if len(slots) != 1 || slots[0].ID != kept.ID {
		t.Fatalf("rejected bookings must be hidden, got %+v", slots)
	}

	rejected, _ := h.slots.Execute(ctx, propertyID, domain.BookingRejected)
	if len(rejected) != 1 || rejected[0].ID != dropped.ID {
		t.Fatalf("explicit status must list rejected bookings, got %+v", rejected)
	}

	if _, err := h.slots.Execute(ctx, " ", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("blank property id must be a validation error, got %v", err)
	}
}

func TestBookingOfAnotherUserIsNotFound(t *testing.T) {
	h := newBookingHarness()
	ctx := context.Background()
	propertyID := h.seed(t, domain.NewLiveListing(beachHouse(), "agent-1", fixedNow))
	b := h.book(t, "user-1", propertyID, 10, 12)

	if _, err := h.get.Execute(ctx, "user-2", b.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("get: expected NotFound, got %v", err)
	}
	if _, err := h.remove.Execute(ctx, "user-2", b.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("delete: expected NotFound, got %v", err)
	}
	got, err := h.get.Execute(ctx, "user-1", b.ID)
	if err != nil || got.ID != b.ID {
		t.Fatalf("owner must see the booking: %v", err)
	}
}

func TestUpdateBookingMergesDates(t *testing.T) {
	h := newBookingHarness()
	ctx := context.Background()
	propertyID := h.seed(t, domain.NewLiveListing(beachHouse(), "agent-1", fixedNow))
	b := h.book(t, "user-1", propertyID, 10, 12)

	end := day(15)
	updated, err := h.update.Execute(ctx, "user-1", b.ID, domain.BookingDates{EndDate: &end})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.StartDate.Equal(day(10)) || !updated.EndDate.Equal(day(15)) {
		t.Fatalf("unexpected dates: %v - %v", updated.StartDate, updated.EndDate)
	}
	if updated.Status != domain.BookingPending {
		t.Fatalf("update must keep the status, got %s", updated.Status)
	}

	early := day(1)
	if _, err := h.update.Execute(ctx, "user-1", b.ID, domain.BookingDates{EndDate: &early}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("end before start must fail validation, got %v", err)
	}

	if _, err := h.reject.Execute(ctx, b.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if _, err := h.update.Execute(ctx, "user-1", b.ID, domain.BookingDates{EndDate: &end}); !errors.Is(err, domain.ErrBookingState) {
		t.Fatalf("rejected booking must not be changed, got %v", err)
	}
}

func TestBookingDecisionTransitions(t *testing.T) {
	h := newBookingHarness()
	ctx := context.Background()
	propertyID := h.seed(t, domain.NewLiveListing(beachHouse(), "agent-1", fixedNow))
	b := h.book(t, "user-1", propertyID, 10, 12)

	confirmed, err := h.confirm.Execute(ctx, b.ID)
	if err != nil || confirmed.Status != domain.BookingConfirmed {
		t.Fatalf("confirm: %v %+v", err, confirmed)
	}
	if _, err := h.confirm.Execute(ctx, b.ID); !errors.Is(err, domain.ErrBookingState) {
		t.Fatalf("confirming twice must fail, got %v", err)
	}
	rejected, err := h.reject.Execute(ctx, b.ID)
	if err != nil || rejected.Status != domain.BookingRejected {
		t.Fatalf("reject confirmed: %v", err)
	}
	if _, err := h.confirm.Execute(ctx, b.ID); !errors.Is(err, domain.ErrBookingState) {
		t.Fatalf("rejected is final, got %v", err)
	}

	stored, _ := h.bookings.FindByID(ctx, b.ID)
	if stored.Status != domain.BookingRejected {
		t.Fatalf("store must hold the last decision, got %s", stored.Status)
	}
	if _, err := h.reject.Execute(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing booking must be NotFound, got %v", err)
	}
}

func TestDeleteOwnBooking(t *testing.T) {
	h := newBookingHarness()
	ctx := context.Background()
	propertyID := h.seed(t, domain.NewLiveListing(beachHouse(), "agent-1", fixedNow))
	b := h.book(t, "user-1", propertyID, 10, 12)

	deleted, err := h.remove.Execute(ctx, "user-1", b.ID)
	if err != nil || deleted.ID != b.ID {
		t.Fatalf("delete: %v", err)
	}
	if h.bookings.Len() != 0 {
		t.Fatalf("booking must be gone")
	}
}
