package rest

import (
	"time"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

// PropertyFieldsRequest - body of add, update-request and direct create calls.
type PropertyFieldsRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ContactName   string   `json:"contactName"`
	ContactNumber string   `json:"contactNumber"`
	PropertyType  string   `json:"propertyType"`
	District      string   `json:"district"`
	Price         *float64 `json:"price"`
	Image         string   `json:"image,omitempty"`
}

// UpdateRequestBody - an update request names the live listing it would overwrite.
type UpdateRequestBody struct {
	PropertyFieldsRequest
	OriginalPropertyID string `json:"originalPropertyId"`
}

// PropertyPatchRequest - absent fields are kept.
type PropertyPatchRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	ContactName   *string  `json:"contactName"`
	ContactNumber *string  `json:"contactNumber"`
	PropertyType  *string  `json:"propertyType"`
	District      *string  `json:"district"`
	Price         *float64 `json:"price"`
	Image         *string  `json:"image"`
}

type PropertyResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	ContactName        string    `json:"contactName"`
	ContactNumber      string    `json:"contactNumber"`
	PropertyType       string    `json:"propertyType"`
	District           string    `json:"district"`
	Price              float64   `json:"price"`
	Image              string    `json:"image,omitempty"`
	Status             string    `json:"status"`
	RequestType        string    `json:"requestType"`
	OriginalPropertyID string    `json:"originalPropertyId,omitempty"`
	PostedByAgent      string    `json:"postedByAgent"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type MessageResponse struct {
	Message  string            `json:"message"`
	Property *PropertyResponse `json:"property,omitempty"`
}

type ReportSummaryResponse struct {
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"byStatus"`
	ByPropertyType map[string]int `json:"byPropertyType"`
	ByRequestType  map[string]int `json:"byRequestType"`
}

type ReportResponse struct {
	Properties []PropertyResponse    `json:"properties"`
	Summary    ReportSummaryResponse `json:"summary"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (r PropertyFieldsRequest) toDomain() (domain.PropertyFields, error) {
	if r.Price == nil {
		return domain.PropertyFields{}, domain.NewValidationError(map[string]string{"price": "price is required"})
	}
	return domain.PropertyFields{
		Title:         r.Title,
		Description:   r.Description,
		ContactName:   r.ContactName,
		ContactNumber: r.ContactNumber,
		PropertyType:  domain.PropertyType(r.PropertyType),
		District:      r.District,
		Price:         *r.Price,
		Image:         r.Image,
	}, nil
}

func (r PropertyPatchRequest) toDomain() domain.PropertyPatch {
	patch := domain.PropertyPatch{
		Title:         r.Title,
		Description:   r.Description,
		ContactName:   r.ContactName,
		ContactNumber: r.ContactNumber,
		District:      r.District,
		Price:         r.Price,
		Image:         r.Image,
	}
	if r.PropertyType != nil {
		pt := domain.PropertyType(*r.PropertyType)
		patch.PropertyType = &pt
	}
	return patch
}

func toPropertyResponse(p *domain.Property) *PropertyResponse {
	if p == nil {
		return nil
	}
	return &PropertyResponse{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		ContactName:        p.ContactName,
		ContactNumber:      p.ContactNumber,
		PropertyType:       string(p.PropertyType),
		District:           p.District,
		Price:              p.Price,
		Image:              p.Image,
		Status:             string(p.Status),
		RequestType:        string(p.RequestType),
		OriginalPropertyID: p.OriginalPropertyID,
		PostedByAgent:      p.PostedByAgent,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func toPropertyResponses(properties []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, len(properties))
	for i := range properties {
		out[i] = *toPropertyResponse(&properties[i])
	}
	return out
}

func toMessageResponse(outcome *domain.Outcome) MessageResponse {
	return MessageResponse{Message: outcome.Message, Property: toPropertyResponse(outcome.Property)}
}

func toReportResponse(report *domain.PropertyReport) ReportResponse {
	summary := ReportSummaryResponse{
		Total:          report.Summary.Total,
		ByStatus:       make(map[string]int, len(report.Summary.ByStatus)),
		ByPropertyType: make(map[string]int, len(report.Summary.ByPropertyType)),
		ByRequestType:  make(map[string]int, len(report.Summary.ByRequestType)),
	}
	for k, v := range report.Summary.ByStatus {
		summary.ByStatus[string(k)] = v
	}
	for k, v := range report.Summary.ByPropertyType {
		summary.ByPropertyType[string(k)] = v
	}
	for k, v := range report.Summary.ByRequestType {
		summary.ByRequestType[string(k)] = v
	}
	return ReportResponse{Properties: toPropertyResponses(report.Properties), Summary: summary}
}
