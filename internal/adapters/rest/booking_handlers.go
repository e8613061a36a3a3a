package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
	"github.com/go-chi/chi/v5"
)

// claimsFromContext returns the caller identity of any authenticated role.
func claimsFromContext(w http.ResponseWriter, r *http.Request, logger port.LoggerPort) (*domain.Claims, bool) {
	claims, ok := contextkeys.ClaimsFromContext(r.Context())
	if !ok || claims.UserID == "" {
		logger.Error("Missing user claims in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return nil, false
	}
	return claims, true
}

// writeBookingError maps booking failures before falling back to writeUseCaseError.
func writeBookingError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	switch {
	case errors.Is(err, domain.ErrNotRentable):
		WriteJSONError(w, http.StatusNotFound, "Property not found or not available for rent.")
	case errors.Is(err, domain.ErrBookingState):
		WriteJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "Booking not found.")
	default:
		writeUseCaseError(w, logger, err)
	}
}

func parseBookingStatus(raw string) (domain.BookingStatus, error) {
	if raw == "" {
		return "", nil
	}
	status := domain.BookingStatus(raw)
	if !status.IsValid() {
		return "", queryError("status must be pending, confirmed or rejected")
	}
	return status, nil
}

// PropertyBookings handles GET /properties/{propertyID}/bookings.
func (h *PropertyHandlers) PropertyBookings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "PropertyBookings"})

	status, err := parseBookingStatus(r.URL.Query().Get("status"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookings, err := h.uc.ListPropertyBookings.Execute(r.Context(), chi.URLParam(r, "propertyID"), status)
	if err != nil {
		writeBookingError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toBookingSlots(bookings))
}

func (h *PropertyHandlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateBooking"})
	claims, ok := claimsFromContext(w, r, logger)
	if !ok {
		return
	}

	var req BookingRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	start, end, err := req.toDomain()
	if err != nil {
		writeBookingError(w, logger, err)
		return
	}

	booking, err := h.uc.CreateBooking.Execute(r.Context(), claims.UserID, strings.TrimSpace(req.PropertyID), start, end)
	if err != nil {
		writeBookingError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, toBookingResponse(booking))
}

// ListBookings handles GET /bookings. Only admins see other users' bookings.
func (h *PropertyHandlers) ListBookings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListBookings"})
	claims, ok := claimsFromContext(w, r, logger)
	if !ok {
		return
	}

	q := r.URL.Query()
	status, err := parseBookingStatus(q.Get("status"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter := domain.BookingFilter{
		PropertyID: strings.TrimSpace(q.Get("propertyId")),
		UserID:     strings.TrimSpace(q.Get("userId")),
		Status:     status,
	}

	bookings, err := h.uc.ListBookings.Execute(r.Context(), *claims, filter)
	if err != nil {
		writeBookingError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toBookingResponses(bookings))
}

func (h *PropertyHandlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetBooking"})
	claims, ok := claimsFromContext(w, r, logger)
	if !ok {
		return
	}

	booking, err := h.uc.GetBooking.Execute(r.Context(), claims.UserID, chi.URLParam(r, "bookingID"))
	if err != nil {
		writeBookingError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toBookingResponse(booking))
}

func (h *PropertyHandlers) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateBooking"})
	claims, ok := claimsFromContext(w, r, logger)
	if !ok {
		return
	}

	var req BookingDatesRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	dates, err := req.toDomain()
	if err != nil {
		writeBookingError(w, logger, err)
		return
	}

	booking, err := h.uc.UpdateBooking.Execute(r.Context(), claims.UserID, chi.URLParam(r, "bookingID"), dates)
	if err != nil {
		writeBookingError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toBookingResponse(booking))
}

func (h *PropertyHandlers) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteBooking"})
	claims, ok := claimsFromContext(w, r, logger)
	if !ok {
		return
	}

	booking, err := h.uc.DeleteBooking.Execute(r.Context(), claims.UserID, chi.URLParam(r, "bookingID"))
	if err != nil {
		writeBookingError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toBookingResponse(booking))
}

func (h *PropertyHandlers) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ConfirmBooking"})

	booking, err := h.uc.ConfirmBooking.Execute(r.Context(), chi.URLParam(r, "bookingID"))
	if err != nil {
		writeBookingError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toBookingResponse(booking))
}

func (h *PropertyHandlers) RejectBooking(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RejectBooking"})

	booking, err := h.uc.RejectBooking.Execute(r.Context(), chi.URLParam(r, "bookingID"))
	if err != nil {
		writeBookingError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toBookingResponse(booking))
}
