package port

import (
	"context"
	"estate-service/internal/core/domain"
)

// InvalidationPublisherPort announces catalog mutations to whoever holds a
// cached listing view. Publishing is best-effort: the write that triggered
// the event has already committed.
type InvalidationPublisherPort interface {
	PublishPropertiesChanged(ctx context.Context, event domain.PropertiesChangedEvent) error
}
