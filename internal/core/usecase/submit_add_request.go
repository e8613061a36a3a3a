package usecase

import (
	"context"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
)

type SubmitAddRequestUseCase struct {
	store     port.PropertyStorePort
	validator port.FieldsValidatorPort
	events    port.PropertyEventsPort
	now       Clock
}

func NewSubmitAddRequestUseCase(store port.PropertyStorePort, validator port.FieldsValidatorPort, events port.PropertyEventsPort, now Clock) *SubmitAddRequestUseCase {
	return &SubmitAddRequestUseCase{store: store, validator: validator, events: events, now: now}
}

func (uc *SubmitAddRequestUseCase) Execute(ctx context.Context, agentID string, fields domain.PropertyFields) (*domain.Outcome, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SubmitAddRequest",
		"agent_id": agentID,
	})

	ucLogger.Info("Use case started", nil)

	fields = fields.Normalize()
	if err := uc.validator.ValidateFields(fields); err != nil {
		ucLogger.Warn("Submitted fields are invalid", port.Fields{"error": err.Error()})
		return nil, err
	}

	now := uc.now()
	request := domain.NewAddRequest(fields, agentID, now)
	if err := uc.store.Create(ctx, request); err != nil {
		ucLogger.Error("Store failed to create add request", err, nil)
		return nil, err
	}

	ucLogger = ucLogger.WithFields(port.Fields{"property_id": request.ID})
	publishEvent(ctx, uc.events, ucLogger, eventFor(domain.EventRequestSubmitted, request, now))

	ucLogger.Info("Use case finished successfully", nil)
	return &domain.Outcome{Message: MsgAddSubmitted, Property: request}, nil
}
