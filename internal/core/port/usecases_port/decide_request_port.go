package usecases_port

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

type ApproveRequestUseCasePort interface {
	Execute(ctx context.Context, propertyID string) (*domain.Outcome, error)
}

type RejectRequestUseCasePort interface {
	Execute(ctx context.Context, propertyID string) (*domain.Outcome, error)
}
