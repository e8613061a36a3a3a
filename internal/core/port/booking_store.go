package port

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

// BookingStorePort keeps bookings apart from the property collection.
// FindByID, UpdateByID and DeleteByID return domain.ErrNotFound for an unknown id.
type BookingStorePort interface {
	// Create assigns the id and stores the booking.
	Create(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// FindMany returns matches ordered by start date, then creation.
	FindMany(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	UpdateByID(ctx context.Context, id string, booking *domain.Booking) error
	DeleteByID(ctx context.Context, id string) error
}
