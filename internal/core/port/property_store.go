package port

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

// PropertyStorePort - one collection holding live listings and pending requests.
// FindByID, UpdateByID and DeleteByID return domain.ErrNotFound for an unknown id.
type PropertyStorePort interface {
	// Create assigns the id and stores the record.
	Create(ctx context.Context, property *domain.Property) error
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	FindMany(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	// UpdateByID overwrites every mutable field of the record with the given values.
	UpdateByID(ctx context.Context, id string, property *domain.Property) error
	DeleteByID(ctx context.Context, id string) error
}
