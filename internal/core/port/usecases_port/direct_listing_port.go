package usecases_port

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

type CreateListingUseCasePort interface {
	Execute(ctx context.Context, agentID string, fields domain.PropertyFields) (*domain.Outcome, error)
}

type UpdateListingUseCasePort interface {
	Execute(ctx context.Context, agentID, propertyID string, patch domain.PropertyPatch) (*domain.Outcome, error)
}

type DeleteListingUseCasePort interface {
	Execute(ctx context.Context, agentID, propertyID string) (*domain.Outcome, error)
}
