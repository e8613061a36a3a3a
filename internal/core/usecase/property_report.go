package usecase

import (
	"context"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
)

type PropertyReportUseCase struct {
	store port.PropertyStorePort
}

func NewPropertyReportUseCase(store port.PropertyStorePort) *PropertyReportUseCase {
	return &PropertyReportUseCase{store: store}
}

// Execute selects records of any status. District must match in full, ignoring case.
func (uc *PropertyReportUseCase) Execute(ctx context.Context, filters domain.ReportFilters) (*domain.PropertyReport, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":      "PropertyReport",
		"property_type": string(filters.PropertyType),
		"status":        string(filters.Status),
		"district":      filters.District,
		"agent_id":      filters.AgentID,
	})

	ucLogger.Info("Use case started", nil)

	properties, err := uc.store.FindMany(ctx, domain.PropertyFilter{
		Status:         filters.Status,
		PropertyType:   filters.PropertyType,
		DistrictEquals: filters.District,
		PostedByAgent:  filters.AgentID,
		NewestFirst:    true,
	})
	if err != nil {
		ucLogger.Error("Store failed to select report rows", err, nil)
		return nil, err
	}

	report := &domain.PropertyReport{
		Properties: properties,
		Summary:    domain.Summarize(properties),
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total": report.Summary.Total})
	return report, nil
}
