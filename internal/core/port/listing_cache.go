package port

import (
	"estate-service/internal/core/domain"

	"github.com/google/uuid"
)

// ListingCachePort caches listing pages keyed by (cursor, limit). Get
// misses return ok=false. Clear drops everything; it is what a
// PropertiesChanged event triggers.
type ListingCachePort interface {
	Get(cursor *uuid.UUID, limit int) (*domain.ListingPage, bool)
	Put(cursor *uuid.UUID, limit int, page *domain.ListingPage)
	Clear()
}
