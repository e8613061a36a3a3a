package usecase

import (
	"context"
	"fmt"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
)

type SubmitDeleteRequestUseCase struct {
	store  port.PropertyStorePort
	events port.PropertyEventsPort
	now    Clock
}

func NewSubmitDeleteRequestUseCase(store port.PropertyStorePort, events port.PropertyEventsPort, now Clock) *SubmitDeleteRequestUseCase {
	return &SubmitDeleteRequestUseCase{store: store, events: events, now: now}
}

// Execute flips the live listing itself to pending/delete, which hides it from the public list right away.
func (uc *SubmitDeleteRequestUseCase) Execute(ctx context.Context, agentID, propertyID string) (*domain.Outcome, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "SubmitDeleteRequest",
		"agent_id":    agentID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.store.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Store failed to load property", err, nil)
		return nil, err
	}
	if !property.IsLive() {
		ucLogger.Warn("Property is not a live listing", port.Fields{
			"status":       string(property.Status),
			"request_type": string(property.RequestType),
		})
		return nil, fmt.Errorf("%w: %s is not a live listing", domain.ErrNotFound, propertyID)
	}
	if !property.OwnedBy(agentID) {
		ucLogger.Warn("Agent does not own the property", nil)
		return nil, domain.ErrUnauthorized
	}

	now := uc.now()
	property.MarkForDeletion(now)
	if err := uc.store.UpdateByID(ctx, property.ID, property); err != nil {
		ucLogger.Error("Store failed to mark property for deletion", err, nil)
		return nil, err
	}

	publishEvent(ctx, uc.events, ucLogger, eventFor(domain.EventRequestSubmitted, property, now))

	ucLogger.Info("Use case finished successfully", nil)
	return &domain.Outcome{Message: MsgDeleteSubmitted, Property: property}, nil
}
