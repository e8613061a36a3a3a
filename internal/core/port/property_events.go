package port

import (
	"context"

	"github.com/MaryChris21/Estify/internal/core/domain"
)

// PropertyEventsPort publishes moderation events to other services.
type PropertyEventsPort interface {
	Publish(ctx context.Context, event domain.PropertyEvent) error
}
