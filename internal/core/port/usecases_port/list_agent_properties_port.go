package usecases_port

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

// ListMineUseCasePort returns every record of the agent, pending requests included.
type ListMineUseCasePort interface {
	Execute(ctx context.Context, agentID string) ([]domain.Property, error)
}

// ListMyListingsUseCasePort returns only the agent's live listings.
type ListMyListingsUseCasePort interface {
	Execute(ctx context.Context, agentID string) ([]domain.Property, error)
}
