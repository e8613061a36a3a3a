package port

import "github.com/MaryChris21/Estify/internal/core/domain"

// FieldsValidatorPort checks content fields against the listing contract.
// It returns a *domain.ValidationError on violations.
type FieldsValidatorPort interface {
	ValidateFields(fields domain.PropertyFields) error
}
