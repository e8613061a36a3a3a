package usecase

import (
	"context"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
)

type ListMineUseCase struct {
	store port.PropertyStorePort
}

func NewListMineUseCase(store port.PropertyStorePort) *ListMineUseCase {
	return &ListMineUseCase{store: store}
}

func (uc *ListMineUseCase) Execute(ctx context.Context, agentID string) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListMine",
		"agent_id": agentID,
	})

	properties, err := uc.store.FindMany(ctx, domain.PropertyFilter{
		PostedByAgent: agentID,
		NewestFirst:   true,
	})
	if err != nil {
		ucLogger.Error("Store failed to list agent properties", err, nil)
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"count": len(properties)})
	return properties, nil
}

type ListMyListingsUseCase struct {
	store port.PropertyStorePort
}

func NewListMyListingsUseCase(store port.PropertyStorePort) *ListMyListingsUseCase {
	return &ListMyListingsUseCase{store: store}
}

func (uc *ListMyListingsUseCase) Execute(ctx context.Context, agentID string) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListMyListings",
		"agent_id": agentID,
	})

	properties, err := uc.store.FindMany(ctx, domain.PropertyFilter{
		Status:        domain.StatusApproved,
		RequestType:   domain.RequestAdd,
		PostedByAgent: agentID,
		NewestFirst:   true,
	})
	if err != nil {
		ucLogger.Error("Store failed to list agent listings", err, nil)
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"count": len(properties)})
	return properties, nil
}
