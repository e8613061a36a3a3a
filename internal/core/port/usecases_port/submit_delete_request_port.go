package usecases_port

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

type SubmitDeleteRequestUseCasePort interface {
	Execute(ctx context.Context, agentID, propertyID string) (*domain.Outcome, error)
}
