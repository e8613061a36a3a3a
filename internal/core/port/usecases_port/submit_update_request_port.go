package usecases_port

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

type SubmitUpdateRequestUseCasePort interface {
	Execute(ctx context.Context, agentID, originalID string, fields domain.PropertyFields) (*domain.Outcome, error)
}
