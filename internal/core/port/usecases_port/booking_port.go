package usecases_port

import (
	"context"
	"time"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

type CreateBookingUseCasePort interface {
	Execute(ctx context.Context, userID, propertyID string, start, end time.Time) (*domain.Booking, error)
}

// ListBookingsUseCasePort shows admins every booking and everyone else only their own.
type ListBookingsUseCasePort interface {
	Execute(ctx context.Context, requester domain.Claims, filter domain.BookingFilter) ([]domain.Booking, error)
}

// ListPropertyBookingsUseCasePort returns the occupied slots of one listing.
type ListPropertyBookingsUseCasePort interface {
	Execute(ctx context.Context, propertyID string, status domain.BookingStatus) ([]domain.Booking, error)
}

type GetBookingUseCasePort interface {
	Execute(ctx context.Context, userID, bookingID string) (*domain.Booking, error)
}

type UpdateBookingUseCasePort interface {
	Execute(ctx context.Context, userID, bookingID string, dates domain.BookingDates) (*domain.Booking, error)
}

type DeleteBookingUseCasePort interface {
	Execute(ctx context.Context, userID, bookingID string) (*domain.Booking, error)
}

// DecideBookingUseCasePort confirms or rejects, depending on how it was built.
type DecideBookingUseCasePort interface {
	Execute(ctx context.Context, bookingID string) (*domain.Booking, error)
}
