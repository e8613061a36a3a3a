package usecases_port

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

type PropertyReportUseCasePort interface {
	Execute(ctx context.Context, filters domain.ReportFilters) (*domain.PropertyReport, error)
}
