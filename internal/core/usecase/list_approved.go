package usecase

import (
	"context"
	"fmt"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
)

type ListApprovedUseCase struct {
	store port.PropertyStorePort
}

func NewListApprovedUseCase(store port.PropertyStorePort) *ListApprovedUseCase {
	return &ListApprovedUseCase{store: store}
}

func (uc *ListApprovedUseCase) Execute(ctx context.Context, filters domain.ListingFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":      "ListApproved",
		"district":      filters.District,
		"property_type": string(filters.PropertyType),
	})

	ucLogger.Debug("Use case started", nil)

	// a pending delete keeps requestType=delete on the live record, so both workflow fields are pinned
	properties, err := uc.store.FindMany(ctx, domain.PropertyFilter{
		Status:           domain.StatusApproved,
		RequestType:      domain.RequestAdd,
		PropertyType:     filters.PropertyType,
		DistrictContains: filters.District,
		MinPrice:         filters.MinPrice,
		MaxPrice:         filters.MaxPrice,
	})
	if err != nil {
		ucLogger.Error("Store failed to list approved properties", err, nil)
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"count": len(properties)})
	return properties, nil
}

type GetApprovedUseCase struct {
	store port.PropertyStorePort
}

func NewGetApprovedUseCase(store port.PropertyStorePort) *GetApprovedUseCase {
	return &GetApprovedUseCase{store: store}
}

// Execute hides pending records behind ErrNotFound.
func (uc *GetApprovedUseCase) Execute(ctx context.Context, propertyID string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetApproved",
		"property_id": propertyID,
	})

	property, err := uc.store.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}
	if !property.IsLive() {
		ucLogger.Debug("Property is not live", nil)
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, propertyID)
	}
	return property, nil
}
