package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
	"github.com/MaryChris21/Estify/internal/core/port/usecases_port"
	"github.com/go-chi/chi/v5"
)

// UseCases groups the ports the handlers dispatch to.
type UseCases struct {
	SubmitAdd    usecases_port.SubmitAddRequestUseCasePort
	SubmitUpdate usecases_port.SubmitUpdateRequestUseCasePort
	SubmitDelete usecases_port.SubmitDeleteRequestUseCasePort
	Approve      usecases_port.ApproveRequestUseCasePort
	Reject       usecases_port.RejectRequestUseCasePort

	ListApproved  usecases_port.ListApprovedUseCasePort
	GetApproved   usecases_port.GetApprovedUseCasePort
	ListPending   usecases_port.ListPendingUseCasePort
	ListMine      usecases_port.ListMineUseCasePort
	ListMyListing usecases_port.ListMyListingsUseCasePort

	CreateListing usecases_port.CreateListingUseCasePort
	UpdateListing usecases_port.UpdateListingUseCasePort
	DeleteListing usecases_port.DeleteListingUseCasePort

	Report usecases_port.PropertyReportUseCasePort

	CreateBooking        usecases_port.CreateBookingUseCasePort
	ListBookings         usecases_port.ListBookingsUseCasePort
	ListPropertyBookings usecases_port.ListPropertyBookingsUseCasePort
	GetBooking           usecases_port.GetBookingUseCasePort
	UpdateBooking        usecases_port.UpdateBookingUseCasePort
	DeleteBooking        usecases_port.DeleteBookingUseCasePort
	ConfirmBooking       usecases_port.DecideBookingUseCasePort
	RejectBooking        usecases_port.DecideBookingUseCasePort
}

type PropertyHandlers struct {
	uc UseCases
}

func NewPropertyHandlers(uc UseCases) *PropertyHandlers {
	return &PropertyHandlers{uc: uc}
}

// agentFromContext returns the authenticated caller id set by Authenticate.
func agentFromContext(w http.ResponseWriter, r *http.Request, logger port.LoggerPort) (string, bool) {
	claims, ok := contextkeys.ClaimsFromContext(r.Context())
	if !ok || claims.UserID == "" {
		logger.Error("Missing user claims in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return "", false
	}
	return claims.UserID, true
}

// ---- public ----

// ListProperties handles GET /properties.
func (h *PropertyHandlers) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})

	filters, err := parseListingFilters(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	properties, err := h.uc.ListApproved.Execute(r.Context(), filters)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}

// GetProperty handles GET /properties/{propertyID}.
func (h *PropertyHandlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProperty"})
	propertyID := chi.URLParam(r, "propertyID")

	property, err := h.uc.GetApproved.Execute(r.Context(), propertyID)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(property))
}

// ---- agent requests ----

func (h *PropertyHandlers) SubmitAddRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubmitAddRequest"})
	agentID, ok := agentFromContext(w, r, logger)
	if !ok {
		return
	}

	var req PropertyFieldsRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	fields, err := req.toDomain()
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	outcome, err := h.uc.SubmitAdd.Execute(r.Context(), agentID, fields)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, toMessageResponse(outcome))
}

func (h *PropertyHandlers) SubmitUpdateRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubmitUpdateRequest"})
	agentID, ok := agentFromContext(w, r, logger)
	if !ok {
		return
	}

	var req UpdateRequestBody
	if err := decodeJSON(r, &req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.OriginalPropertyID) == "" {
		RespondWithJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  domain.ErrValidation.Error(),
			Fields: map[string]string{"originalPropertyId": "originalPropertyId is required"},
		})
		return
	}
	fields, err := req.toDomain()
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	outcome, err := h.uc.SubmitUpdate.Execute(r.Context(), agentID, req.OriginalPropertyID, fields)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, toMessageResponse(outcome))
}

func (h *PropertyHandlers) SubmitDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubmitDeleteRequest"})
	agentID, ok := agentFromContext(w, r, logger)
	if !ok {
		return
	}

	outcome, err := h.uc.SubmitDelete.Execute(r.Context(), agentID, chi.URLParam(r, "propertyID"))
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toMessageResponse(outcome))
}

// ---- agent views and direct management ----

func (h *PropertyHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListMine"})
	agentID, ok := agentFromContext(w, r, logger)
	if !ok {
		return
	}

	properties, err := h.uc.ListMine.Execute(r.Context(), agentID)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}

func (h *PropertyHandlers) ListMyListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListMyListings"})
	agentID, ok := agentFromContext(w, r, logger)
	if !ok {
		return
	}

	properties, err := h.uc.ListMyListing.Execute(r.Context(), agentID)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}

func (h *PropertyHandlers) CreateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateListing"})
	agentID, ok := agentFromContext(w, r, logger)
	if !ok {
		return
	}

	var req PropertyFieldsRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	fields, err := req.toDomain()
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	outcome, err := h.uc.CreateListing.Execute(r.Context(), agentID, fields)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, toMessageResponse(outcome))
}

func (h *PropertyHandlers) UpdateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateListing"})
	agentID, ok := agentFromContext(w, r, logger)
	if !ok {
		return
	}

	var req PropertyPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	outcome, err := h.uc.UpdateListing.Execute(r.Context(), agentID, chi.URLParam(r, "propertyID"), req.toDomain())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toMessageResponse(outcome))
}

func (h *PropertyHandlers) DeleteListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteListing"})
	agentID, ok := agentFromContext(w, r, logger)
	if !ok {
		return
	}

	outcome, err := h.uc.DeleteListing.Execute(r.Context(), agentID, chi.URLParam(r, "propertyID"))
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toMessageResponse(outcome))
}

// ---- admin ----

func (h *PropertyHandlers) ListPending(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListPending"})

	properties, err := h.uc.ListPending.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}

func (h *PropertyHandlers) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ApproveRequest"})

	outcome, err := h.uc.Approve.Execute(r.Context(), chi.URLParam(r, "propertyID"))
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toMessageResponse(outcome))
}

func (h *PropertyHandlers) RejectRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RejectRequest"})

	outcome, err := h.uc.Reject.Execute(r.Context(), chi.URLParam(r, "propertyID"))
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toMessageResponse(outcome))
}

func (h *PropertyHandlers) PropertyReport(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "PropertyReport"})

	filters, err := parseReportFilters(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.uc.Report.Execute(r.Context(), filters)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toReportResponse(report))
}

// ---- query parsing ----

type queryError string

func (e queryError) Error() string { return string(e) }

func parseListingFilters(r *http.Request) (domain.ListingFilters, error) {
	q := r.URL.Query()
	filters := domain.ListingFilters{District: strings.TrimSpace(q.Get("district"))}

	if raw := q.Get("propertyType"); raw != "" {
		pt := domain.PropertyType(raw)
		if !pt.IsValid() {
			return filters, queryError("propertyType must be rent or selling")
		}
		filters.PropertyType = pt
	}

	var err error
	if filters.MinPrice, err = parsePrice(q.Get("minPrice"), "minPrice"); err != nil {
		return filters, err
	}
	if filters.MaxPrice, err = parsePrice(q.Get("maxPrice"), "maxPrice"); err != nil {
		return filters, err
	}
	return filters, nil
}

func parseReportFilters(r *http.Request) (domain.ReportFilters, error) {
	q := r.URL.Query()
	filters := domain.ReportFilters{
		District: strings.TrimSpace(q.Get("district")),
		AgentID:  strings.TrimSpace(q.Get("agentId")),
	}

	if raw := q.Get("type"); raw != "" {
		pt := domain.PropertyType(raw)
		if !pt.IsValid() {
			return filters, queryError("type must be rent or selling")
		}
		filters.PropertyType = pt
	}
	if raw := q.Get("status"); raw != "" {
		st := domain.Status(raw)
		if !st.IsValid() {
			return filters, queryError("status must be pending or approved")
		}
		filters.Status = st
	}
	return filters, nil
}

func parsePrice(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, queryError(name + " must be a number")
	}
	return &v, nil
}
