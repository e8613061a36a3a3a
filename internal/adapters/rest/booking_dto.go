package rest

import (
	"strings"
	"time"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

// bookingDateLayouts are tried in order; a bare date is read as UTC midnight.
var bookingDateLayouts = []string{time.RFC3339, "2006-01-02"}

type BookingRequest struct {
	PropertyID string `json:"propertyId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// BookingDatesRequest - absent dates are kept.
type BookingDatesRequest struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

type BookingResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	UserID     string    `json:"userId"`
	Price      float64   `json:"price"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BookingSlotResponse - the public view of a booking: who booked is not shown.
type BookingSlotResponse struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
}

func parseBookingDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// toDomain parses both dates. Empty dates are left zero for the use case to report.
func (r BookingRequest) toDomain() (start, end time.Time, err error) {
	fields := make(map[string]string)
	if strings.TrimSpace(r.PropertyID) == "" {
		fields["propertyId"] = "propertyId is required"
	}
	if r.StartDate != "" {
		if t, ok := parseBookingDate(r.StartDate); ok {
			start = t
		} else {
			fields["startDate"] = "startDate must be a date"
		}
	}
	if r.EndDate != "" {
		if t, ok := parseBookingDate(r.EndDate); ok {
			end = t
		} else {
			fields["endDate"] = "endDate must be a date"
		}
	}
	if len(fields) > 0 {
		return start, end, domain.NewValidationError(fields)
	}
	return start, end, nil
}

func (r BookingDatesRequest) toDomain() (domain.BookingDates, error) {
	var dates domain.BookingDates
	fields := make(map[string]string)
	if r.StartDate != nil {
		if t, ok := parseBookingDate(*r.StartDate); ok {
			dates.StartDate = &t
		} else {
			fields["startDate"] = "startDate must be a date"
		}
	}
	if r.EndDate != nil {
		if t, ok := parseBookingDate(*r.EndDate); ok {
			dates.EndDate = &t
		} else {
			fields["endDate"] = "endDate must be a date"
		}
	}
	if len(fields) > 0 {
		return dates, domain.NewValidationError(fields)
	}
	return dates, nil
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		UserID:     b.UserID,
		Price:      b.Price,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func toBookingResponses(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i := range bookings {
		out[i] = toBookingResponse(&bookings[i])
	}
	return out
}

func toBookingSlots(bookings []domain.Booking) []BookingSlotResponse {
	out := make([]BookingSlotResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingSlotResponse{StartDate: b.StartDate, EndDate: b.EndDate, Status: string(b.Status)}
	}
	return out
}
