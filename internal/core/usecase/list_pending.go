package usecase

import (
	"context"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
)

type ListPendingUseCase struct {
	store port.PropertyStorePort
}

func NewListPendingUseCase(store port.PropertyStorePort) *ListPendingUseCase {
	return &ListPendingUseCase{store: store}
}

func (uc *ListPendingUseCase) Execute(ctx context.Context) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListPending"})

	properties, err := uc.store.FindMany(ctx, domain.PropertyFilter{Status: domain.StatusPending})
	if err != nil {
		ucLogger.Error("Store failed to list pending requests", err, nil)
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"count": len(properties)})
	return properties, nil
}
