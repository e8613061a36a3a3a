package usecases_port

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

type ListPendingUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Property, error)
}
