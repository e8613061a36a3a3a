package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
)

// CreateBookingUseCase books a live rent listing for a user. Overlapping stays are not checked.
type CreateBookingUseCase struct {
	bookings   port.BookingStorePort
	properties port.PropertyStorePort
	now        Clock
}

func NewCreateBookingUseCase(bookings port.BookingStorePort, properties port.PropertyStorePort, now Clock) *CreateBookingUseCase {
	return &CreateBookingUseCase{bookings: bookings, properties: properties, now: now}
}

func (uc *CreateBookingUseCase) Execute(ctx context.Context, userID, propertyID string, start, end time.Time) (*domain.Booking, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CreateBooking",
		"user_id":     userID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	if err := domain.ValidateBookingDates(start, end); err != nil {
		ucLogger.Warn("Booking dates are invalid", port.Fields{"error": err.Error()})
		return nil, err
	}

	listing, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ucLogger.Warn("Listing not found", nil)
			return nil, fmt.Errorf("%w: %s", domain.ErrNotRentable, propertyID)
		}
		ucLogger.Error("Store failed to load listing", err, nil)
		return nil, err
	}
	if !listing.IsRentable() {
		ucLogger.Warn("Listing is not a live rent listing", port.Fields{
			"status":        string(listing.Status),
			"property_type": string(listing.PropertyType),
		})
		return nil, fmt.Errorf("%w: %s", domain.ErrNotRentable, propertyID)
	}

	booking := domain.NewBooking(listing, userID, start, end, uc.now())
	if err := uc.bookings.Create(ctx, booking); err != nil {
		ucLogger.Error("Store failed to create booking", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"booking_id": booking.ID})
	return booking, nil
}

type ListBookingsUseCase struct {
	bookings port.BookingStorePort
}

func NewListBookingsUseCase(bookings port.BookingStorePort) *ListBookingsUseCase {
	return &ListBookingsUseCase{bookings: bookings}
}

func (uc *ListBookingsUseCase) Execute(ctx context.Context, requester domain.Claims, filter domain.BookingFilter) ([]domain.Booking, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ListBookings",
		"user_id":  requester.UserID,
	})

	if requester.Role != domain.RoleAdmin {
		filter.UserID = requester.UserID
	}

	bookings, err := uc.bookings.FindMany(ctx, filter)
	if err != nil {
		ucLogger.Error("Store failed to list bookings", err, nil)
		return nil, err
	}
	ucLogger.Debug("Bookings listed", port.Fields{"count": len(bookings)})
	return bookings, nil
}

type ListPropertyBookingsUseCase struct {
	bookings port.BookingStorePort
}

func NewListPropertyBookingsUseCase(bookings port.BookingStorePort) *ListPropertyBookingsUseCase {
	return &ListPropertyBookingsUseCase{bookings: bookings}
}

// Execute lists every non-rejected booking of the listing unless a status is given.
func (uc *ListPropertyBookingsUseCase) Execute(ctx context.Context, propertyID string, status domain.BookingStatus) ([]domain.Booking, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "ListPropertyBookings",
		"property_id": propertyID,
	})

	if strings.TrimSpace(propertyID) == "" {
		return nil, domain.NewValidationError(map[string]string{"propertyId": "property id is required"})
	}

	bookings, err := uc.bookings.FindMany(ctx, domain.BookingFilter{
		PropertyID:      propertyID,
		Status:          status,
		ExcludeRejected: status == "",
	})
	if err != nil {
		ucLogger.Error("Store failed to list property bookings", err, nil)
		return nil, err
	}
	return bookings, nil
}

// loadOwnedBooking hides bookings of other users behind NotFound.
func loadOwnedBooking(ctx context.Context, store port.BookingStorePort, logger port.LoggerPort, userID, bookingID string) (*domain.Booking, error) {
	booking, err := store.FindByID(ctx, bookingID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Store failed to load booking", err, nil)
		}
		return nil, err
	}
	if !booking.OwnedBy(userID) {
		logger.Warn("Booking belongs to another user", nil)
		return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, bookingID)
	}
	return booking, nil
}

type GetBookingUseCase struct {
	bookings port.BookingStorePort
}

func NewGetBookingUseCase(bookings port.BookingStorePort) *GetBookingUseCase {
	return &GetBookingUseCase{bookings: bookings}
}

func (uc *GetBookingUseCase) Execute(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetBooking",
		"user_id":    userID,
		"booking_id": bookingID,
	})
	return loadOwnedBooking(ctx, uc.bookings, ucLogger, userID, bookingID)
}

// UpdateBookingUseCase changes the dates of the user's own booking. The status is kept.
type UpdateBookingUseCase struct {
	bookings port.BookingStorePort
	now      Clock
}

func NewUpdateBookingUseCase(bookings port.BookingStorePort, now Clock) *UpdateBookingUseCase {
	return &UpdateBookingUseCase{bookings: bookings, now: now}
}

func (uc *UpdateBookingUseCase) Execute(ctx context.Context, userID, bookingID string, dates domain.BookingDates) (*domain.Booking, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "UpdateBooking",
		"user_id":    userID,
		"booking_id": bookingID,
	})

	ucLogger.Info("Use case started", nil)

	booking, err := loadOwnedBooking(ctx, uc.bookings, ucLogger, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingRejected {
		ucLogger.Warn("Rejected booking cannot be changed", nil)
		return nil, fmt.Errorf("%w: %s is rejected", domain.ErrBookingState, bookingID)
	}

	if dates.StartDate != nil {
		booking.StartDate = *dates.StartDate
	}
	if dates.EndDate != nil {
		booking.EndDate = *dates.EndDate
	}
	if err := domain.ValidateBookingDates(booking.StartDate, booking.EndDate); err != nil {
		ucLogger.Warn("Booking dates are invalid", port.Fields{"error": err.Error()})
		return nil, err
	}

	booking.UpdatedAt = uc.now()
	if err := uc.bookings.UpdateByID(ctx, booking.ID, booking); err != nil {
		ucLogger.Error("Store failed to update booking", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return booking, nil
}

type DeleteBookingUseCase struct {
	bookings port.BookingStorePort
}

func NewDeleteBookingUseCase(bookings port.BookingStorePort) *DeleteBookingUseCase {
	return &DeleteBookingUseCase{bookings: bookings}
}

func (uc *DeleteBookingUseCase) Execute(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "DeleteBooking",
		"user_id":    userID,
		"booking_id": bookingID,
	})

	ucLogger.Info("Use case started", nil)

	booking, err := loadOwnedBooking(ctx, uc.bookings, ucLogger, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if err := uc.bookings.DeleteByID(ctx, booking.ID); err != nil {
		ucLogger.Error("Store failed to delete booking", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return booking, nil
}

// DecideBookingUseCase moves a booking to a fixed target status on behalf of an admin.
type DecideBookingUseCase struct {
	bookings port.BookingStorePort
	target   domain.BookingStatus
	now      Clock
}

func NewConfirmBookingUseCase(bookings port.BookingStorePort, now Clock) *DecideBookingUseCase {
	return &DecideBookingUseCase{bookings: bookings, target: domain.BookingConfirmed, now: now}
}

func NewRejectBookingUseCase(bookings port.BookingStorePort, now Clock) *DecideBookingUseCase {
	return &DecideBookingUseCase{bookings: bookings, target: domain.BookingRejected, now: now}
}

func (uc *DecideBookingUseCase) Execute(ctx context.Context, bookingID string) (*domain.Booking, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "DecideBooking",
		"booking_id": bookingID,
		"target":     string(uc.target),
	})

	ucLogger.Info("Use case started", nil)

	booking, err := uc.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			ucLogger.Error("Store failed to load booking", err, nil)
		}
		return nil, err
	}
	if !booking.Status.CanMoveTo(uc.target) {
		ucLogger.Warn("Booking status transition refused", port.Fields{"status": string(booking.Status)})
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrBookingState, booking.Status, uc.target)
	}

	booking.Status = uc.target
	booking.UpdatedAt = uc.now()
	if err := uc.bookings.UpdateByID(ctx, booking.ID, booking); err != nil {
		ucLogger.Error("Store failed to update booking", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return booking, nil
}
