package contracts

import (
	"errors"
	"testing"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

func validFields() domain.PropertyFields {
	return domain.PropertyFields{
		Title:         "Sea View Villa",
		Description:   "Spacious 4BR villa near the coast",
		ContactName:   "Nimal Perera",
		ContactNumber: "0711234567",
		PropertyType:  domain.PropertyTypeSelling,
		District:      "Galle",
		Price:         50000000,
	}
}

func TestGenerateKeyFromPath(t *testing.T) {
	cases := map[string]string{
		"requests/property-fields/v1.json": "PropertyFieldsRequest/1.0.0",
		"events/property/v1.json":          "PropertyEvent/1.0.0",
		"events/v1.json":                   "",
	}
	for path, want := range cases {
		if got := generateKeyFromPath(path); got != want {
			t.Fatalf("%s: expected %q, got %q", path, want, got)
		}
	}
}

func TestEmbeddedSchemasAreRegistered(t *testing.T) {
	for _, name := range []string{PropertyFieldsSchema, PropertyEventSchema} {
		if _, err := lookup(name, SchemaVersion); err != nil {
			t.Fatalf("schema %s not registered: %v", name, err)
		}
	}
}

func TestValidateFieldsAcceptsValidListing(t *testing.T) {
	v, err := NewFieldsValidator()
	if err != nil {
		t.Fatalf("validator: %v", err)
	}
	if err := v.ValidateFields(validFields()); err != nil {
		t.Fatalf("expected valid fields, got %v", err)
	}

	zeroPrice := validFields()
	zeroPrice.Price = 0
	zeroPrice.PropertyType = domain.PropertyTypeRent
	if err := v.ValidateFields(zeroPrice); err != nil {
		t.Fatalf("price 0 must be accepted, got %v", err)
	}
}

func TestValidateFieldsReportsEveryBrokenField(t *testing.T) {
	v, err := NewFieldsValidator()
	if err != nil {
		t.Fatalf("validator: %v", err)
	}

	bad := domain.PropertyFields{
		Title:         "ab",
		Description:   "short",
		ContactName:   "R2 D2",
		ContactNumber: "071123456",
		PropertyType:  "lease",
		District:      "",
		Price:         -1,
	}
	err = v.ValidateFields(bad)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected a validation error, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	for _, field := range []string{"title", "description", "contactName", "contactNumber", "propertyType", "district", "price"} {
		if verr.Fields[field] == "" {
			t.Fatalf("expected a message for %s, got %v", field, verr.Fields)
		}
	}
}

func TestValidateEvent(t *testing.T) {
	good := []byte(`{"eventType":"request.approved","propertyId":"p-1","requestType":"add","agentId":"a-1","occurredAt":"2025-03-01T10:00:00Z"}`)
	if err := ValidateEvent(PropertyEventSchema, SchemaVersion, good); err != nil {
		t.Fatalf("expected valid event, got %v", err)
	}

	bad := []byte(`{"eventType":"request.lost","propertyId":"p-1","requestType":"add","agentId":"a-1","occurredAt":"yesterday"}`)
	if err := ValidateEvent(PropertyEventSchema, SchemaVersion, bad); err == nil {
		t.Fatalf("expected invalid event to fail")
	}

	if err := ValidateEvent("UnknownEvent", SchemaVersion, good); err == nil {
		t.Fatalf("expected unknown schema to fail")
	}
	if err := ValidateEvent(PropertyEventSchema, SchemaVersion, []byte("{")); err == nil {
		t.Fatalf("expected broken JSON to fail")
	}
}
