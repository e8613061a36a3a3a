package usecase

import (
	"context"
	"errors"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
	"github.com/MaryChris21/Estify/internal/core/reconciler"
)

type ApproveRequestUseCase struct {
	store  port.PropertyStorePort
	events port.PropertyEventsPort
	now    Clock
}

func NewApproveRequestUseCase(store port.PropertyStorePort, events port.PropertyEventsPort, now Clock) *ApproveRequestUseCase {
	return &ApproveRequestUseCase{store: store, events: events, now: now}
}

func (uc *ApproveRequestUseCase) Execute(ctx context.Context, propertyID string) (*domain.Outcome, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ApproveRequest",
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	pending, err := uc.store.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Store failed to load pending request", err, nil)
		return nil, err
	}

	var original *domain.Property
	if reconciler.NeedsOriginal(pending) {
		original, err = uc.store.FindByID(ctx, pending.OriginalPropertyID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			ucLogger.Error("Store failed to load original property", err, port.Fields{"original_property_id": pending.OriginalPropertyID})
			return nil, err
		}
	}

	now := uc.now()
	mutation, err := reconciler.Approve(pending, original, now)
	if err != nil {
		ucLogger.Warn("Request cannot be approved", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := applyMutation(ctx, uc.store, mutation); err != nil {
		ucLogger.Error("Store failed to apply approval", err, nil)
		return nil, err
	}

	publishEvent(ctx, uc.events, ucLogger, eventFor(domain.EventRequestApproved, pending, now))

	ucLogger.Info("Use case finished successfully", port.Fields{"request_type": string(pending.RequestType)})
	return &domain.Outcome{Message: mutation.Message, Property: mutation.Save}, nil
}

type RejectRequestUseCase struct {
	store  port.PropertyStorePort
	events port.PropertyEventsPort
	now    Clock
}

func NewRejectRequestUseCase(store port.PropertyStorePort, events port.PropertyEventsPort, now Clock) *RejectRequestUseCase {
	return &RejectRequestUseCase{store: store, events: events, now: now}
}

func (uc *RejectRequestUseCase) Execute(ctx context.Context, propertyID string) (*domain.Outcome, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "RejectRequest",
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	pending, err := uc.store.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Store failed to load pending request", err, nil)
		return nil, err
	}

	now := uc.now()
	mutation, err := reconciler.Reject(pending, now)
	if err != nil {
		ucLogger.Warn("Request cannot be rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := applyMutation(ctx, uc.store, mutation); err != nil {
		ucLogger.Error("Store failed to apply rejection", err, nil)
		return nil, err
	}

	publishEvent(ctx, uc.events, ucLogger, eventFor(domain.EventRequestRejected, pending, now))

	ucLogger.Info("Use case finished successfully", port.Fields{"request_type": string(pending.RequestType)})
	return &domain.Outcome{Message: mutation.Message, Property: mutation.Save}, nil
}

// applyMutation writes Save before Delete. The two writes are not atomic; a crash in between
// leaves a stale shadow whose re-approval repeats the same overwrite and then removes it.
func applyMutation(ctx context.Context, store port.PropertyStorePort, m reconciler.Mutation) error {
	if m.Save != nil {
		if err := store.UpdateByID(ctx, m.Save.ID, m.Save); err != nil {
			return err
		}
	}
	if m.Delete != "" {
		if err := store.DeleteByID(ctx, m.Delete); err != nil {
			return err
		}
	}
	return nil
}
