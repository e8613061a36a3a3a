package usecases_port

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

type SubmitAddRequestUseCasePort interface {
	Execute(ctx context.Context, agentID string, fields domain.PropertyFields) (*domain.Outcome, error)
}
