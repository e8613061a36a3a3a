package usecase

import (
	"context"
	"fmt"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
)

// CreateListingUseCase publishes a listing without moderation.
type CreateListingUseCase struct {
	store     port.PropertyStorePort
	validator port.FieldsValidatorPort
	events    port.PropertyEventsPort
	now       Clock
}

func NewCreateListingUseCase(store port.PropertyStorePort, validator port.FieldsValidatorPort, events port.PropertyEventsPort, now Clock) *CreateListingUseCase {
	return &CreateListingUseCase{store: store, validator: validator, events: events, now: now}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, agentID string, fields domain.PropertyFields) (*domain.Outcome, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateListing",
		"agent_id": agentID,
	})

	ucLogger.Info("Use case started", nil)

	fields = fields.Normalize()
	if err := uc.validator.ValidateFields(fields); err != nil {
		ucLogger.Warn("Listing fields are invalid", port.Fields{"error": err.Error()})
		return nil, err
	}

	now := uc.now()
	listing := domain.NewLiveListing(fields, agentID, now)
	if err := uc.store.Create(ctx, listing); err != nil {
		ucLogger.Error("Store failed to create listing", err, nil)
		return nil, err
	}

	ucLogger = ucLogger.WithFields(port.Fields{"property_id": listing.ID})
	publishEvent(ctx, uc.events, ucLogger, eventFor(domain.EventListingCreated, listing, now))

	ucLogger.Info("Use case finished successfully", nil)
	return &domain.Outcome{Message: MsgListingCreated, Property: listing}, nil
}

// UpdateListingUseCase patches a live listing owned by the agent in place.
type UpdateListingUseCase struct {
	store     port.PropertyStorePort
	validator port.FieldsValidatorPort
	events    port.PropertyEventsPort
	now       Clock
}

func NewUpdateListingUseCase(store port.PropertyStorePort, validator port.FieldsValidatorPort, events port.PropertyEventsPort, now Clock) *UpdateListingUseCase {
	return &UpdateListingUseCase{store: store, validator: validator, events: events, now: now}
}

func (uc *UpdateListingUseCase) Execute(ctx context.Context, agentID, propertyID string, patch domain.PropertyPatch) (*domain.Outcome, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateListing",
		"agent_id":    agentID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	listing, err := uc.store.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Store failed to load listing", err, nil)
		return nil, err
	}
	if !listing.OwnedBy(agentID) {
		ucLogger.Warn("Agent does not own the listing", nil)
		return nil, domain.ErrUnauthorized
	}
	if !listing.IsLive() {
		ucLogger.Warn("Record is not a live listing", port.Fields{"status": string(listing.Status)})
		return nil, fmt.Errorf("%w: %s is not a live listing", domain.ErrNotFound, propertyID)
	}

	merged := listing.PropertyFields.Apply(patch)
	if err := uc.validator.ValidateFields(merged); err != nil {
		ucLogger.Warn("Patched fields are invalid", port.Fields{"error": err.Error()})
		return nil, err
	}

	now := uc.now()
	listing.PropertyFields = merged
	listing.UpdatedAt = now
	if err := uc.store.UpdateByID(ctx, listing.ID, listing); err != nil {
		ucLogger.Error("Store failed to update listing", err, nil)
		return nil, err
	}

	publishEvent(ctx, uc.events, ucLogger, eventFor(domain.EventListingUpdated, listing, now))

	ucLogger.Info("Use case finished successfully", nil)
	return &domain.Outcome{Message: MsgListingUpdated, Property: listing}, nil
}

// DeleteListingUseCase removes any record owned by the agent, including its own pending requests.
type DeleteListingUseCase struct {
	store  port.PropertyStorePort
	events port.PropertyEventsPort
	now    Clock
}

func NewDeleteListingUseCase(store port.PropertyStorePort, events port.PropertyEventsPort, now Clock) *DeleteListingUseCase {
	return &DeleteListingUseCase{store: store, events: events, now: now}
}

func (uc *DeleteListingUseCase) Execute(ctx context.Context, agentID, propertyID string) (*domain.Outcome, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteListing",
		"agent_id":    agentID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	listing, err := uc.store.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Store failed to load listing", err, nil)
		return nil, err
	}
	if !listing.OwnedBy(agentID) {
		ucLogger.Warn("Agent does not own the listing", nil)
		return nil, domain.ErrUnauthorized
	}

	if err := uc.store.DeleteByID(ctx, listing.ID); err != nil {
		ucLogger.Error("Store failed to delete listing", err, nil)
		return nil, err
	}

	publishEvent(ctx, uc.events, ucLogger, eventFor(domain.EventListingDeleted, listing, uc.now()))

	ucLogger.Info("Use case finished successfully", nil)
	return &domain.Outcome{Message: MsgListingDeleted}, nil
}
