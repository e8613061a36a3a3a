package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// fieldMessages replaces the schema library wording for the known fields.
var fieldMessages = map[string]string{
	"title":         "title must be at least 3 characters",
	"description":   "description must be at least 10 characters",
	"contactName":   "contact name may contain only letters and spaces",
	"contactNumber": "contact number must be exactly 10 digits",
	"propertyType":  "property type must be rent or selling",
	"district":      "district is required",
	"price":         "price must be a number greater than or equal to 0",
}

type propertyFieldsDoc struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ContactName   string  `json:"contactName"`
	ContactNumber string  `json:"contactNumber"`
	PropertyType  string  `json:"propertyType"`
	District      string  `json:"district"`
	Price         float64 `json:"price"`
	Image         string  `json:"image,omitempty"`
}

// FieldsValidator checks property content against the PropertyFieldsRequest schema.
type FieldsValidator struct {
	schema *jsonschema.Schema
}

var _ port.FieldsValidatorPort = (*FieldsValidator)(nil)

func NewFieldsValidator() (*FieldsValidator, error) {
	schema, err := lookup(PropertyFieldsSchema, SchemaVersion)
	if err != nil {
		return nil, err
	}
	return &FieldsValidator{schema: schema}, nil
}

func (v *FieldsValidator) ValidateFields(fields domain.PropertyFields) error {
	body, err := json.Marshal(propertyFieldsDoc{
		Title:         fields.Title,
		Description:   fields.Description,
		ContactName:   fields.ContactName,
		ContactNumber: fields.ContactNumber,
		PropertyType:  string(fields.PropertyType),
		District:      fields.District,
		Price:         fields.Price,
		Image:         fields.Image,
	})
	if err != nil {
		// NaN and Inf cannot be encoded
		return domain.NewValidationError(map[string]string{"price": fieldMessages["price"]})
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("decode property fields: %w", err)
	}

	err = v.schema.Validate(doc)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("validate property fields: %w", err)
	}

	violations := make(map[string]string)
	collectViolations(verr, violations)
	return domain.NewValidationError(violations)
}

// collectViolations keeps the first leaf message per instance field.
func collectViolations(verr *jsonschema.ValidationError, out map[string]string) {
	if len(verr.Causes) > 0 {
		for _, cause := range verr.Causes {
			collectViolations(cause, out)
		}
		return
	}

	field := strings.TrimPrefix(verr.InstanceLocation, "/")
	if i := strings.Index(field, "/"); i >= 0 {
		field = field[:i]
	}
	if field == "" {
		field = "body"
	}
	if _, seen := out[field]; seen {
		return
	}
	if msg, ok := fieldMessages[field]; ok {
		out[field] = msg
		return
	}
	out[field] = verr.Message
}
