package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
)

type SubmitUpdateRequestUseCase struct {
	store     port.PropertyStorePort
	validator port.FieldsValidatorPort
	events    port.PropertyEventsPort
	now       Clock
}

func NewSubmitUpdateRequestUseCase(store port.PropertyStorePort, validator port.FieldsValidatorPort, events port.PropertyEventsPort, now Clock) *SubmitUpdateRequestUseCase {
	return &SubmitUpdateRequestUseCase{store: store, validator: validator, events: events, now: now}
}

// Execute stores a shadow record. The live listing stays untouched until an admin approves it.
func (uc *SubmitUpdateRequestUseCase) Execute(ctx context.Context, agentID, originalID string, fields domain.PropertyFields) (*domain.Outcome, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":             "SubmitUpdateRequest",
		"agent_id":             agentID,
		"original_property_id": originalID,
	})

	ucLogger.Info("Use case started", nil)

	fields = fields.Normalize()
	if err := uc.validator.ValidateFields(fields); err != nil {
		ucLogger.Warn("Submitted fields are invalid", port.Fields{"error": err.Error()})
		return nil, err
	}

	original, err := uc.store.FindByID(ctx, originalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ucLogger.Warn("Original property not found", nil)
			return nil, fmt.Errorf("%w: %s", domain.ErrOriginalNotFound, originalID)
		}
		ucLogger.Error("Store failed to load original property", err, nil)
		return nil, err
	}
	if !original.IsLive() {
		ucLogger.Warn("Original property is not a live listing", port.Fields{"status": string(original.Status)})
		return nil, fmt.Errorf("%w: %s", domain.ErrOriginalNotFound, originalID)
	}
	if !original.OwnedBy(agentID) {
		ucLogger.Warn("Agent does not own the original property", nil)
		return nil, domain.ErrUnauthorized
	}

	now := uc.now()
	request := domain.NewUpdateRequest(fields, original.ID, agentID, now)
	if err := uc.store.Create(ctx, request); err != nil {
		ucLogger.Error("Store failed to create update request", err, nil)
		return nil, err
	}

	ucLogger = ucLogger.WithFields(port.Fields{"property_id": request.ID})
	publishEvent(ctx, uc.events, ucLogger, eventFor(domain.EventRequestSubmitted, request, now))

	ucLogger.Info("Use case finished successfully", nil)
	return &domain.Outcome{Message: MsgUpdateSubmitted, Property: request}, nil
}
