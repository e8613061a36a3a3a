package domain

import "time"

// BookingStatus - admin decision state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingRejected:
		return true
	}
	return false
}

// Booking - a user's stay request against a live rent listing.
// Price is copied from the listing when the booking is made.
type Booking struct {
	ID         string
	PropertyID string
	UserID     string
	Price      float64
	StartDate  time.Time
	EndDate    time.Time
	Status     BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Booking) OwnedBy(userID string) bool {
	return b.UserID != "" && b.UserID == userID
}

// CanMoveTo: pending may be confirmed or rejected, a confirmed booking may still be rejected,
// rejected is final.
func (s BookingStatus) CanMoveTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingRejected
	case BookingConfirmed:
		return next == BookingRejected
	}
	return false
}

// BookingDates - requested stay. Nil keeps the current date on update.
type BookingDates struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// BookingFilter - zero values mean "no restriction".
type BookingFilter struct {
	PropertyID string
	UserID     string
	Status     BookingStatus
	// ExcludeRejected is applied when Status is empty.
	ExcludeRejected bool
}

// NewBooking builds a pending booking for a rentable listing.
func NewBooking(listing *Property, userID string, start, end, now time.Time) *Booking {
	return &Booking{
		PropertyID: listing.ID,
		UserID:     userID,
		Price:      listing.Price,
		StartDate:  start,
		EndDate:    end,
		Status:     BookingPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsRentable reports whether a booking may be made against the record.
func (p *Property) IsRentable() bool {
	return p.IsLive() && p.PropertyType == PropertyTypeRent
}

// ValidateBookingDates checks that both dates are set and the stay does not end before it starts.
func ValidateBookingDates(start, end time.Time) error {
	fields := make(map[string]string)
	if start.IsZero() {
		fields["startDate"] = "start date is required"
	}
	if end.IsZero() {
		fields["endDate"] = "end date is required"
	}
	if len(fields) == 0 && start.After(end) {
		fields["endDate"] = "end date must be after start date"
	}
	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}
