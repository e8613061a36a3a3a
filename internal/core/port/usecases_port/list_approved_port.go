package usecases_port

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

type ListApprovedUseCasePort interface {
	Execute(ctx context.Context, filters domain.ListingFilters) ([]domain.Property, error)
}

type GetApprovedUseCasePort interface {
	Execute(ctx context.Context, propertyID string) (*domain.Property, error)
}
