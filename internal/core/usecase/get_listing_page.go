package usecase

import (
	"context"

	"estate-service/internal/contextkeys"
	"estate-service/internal/core/domain"
	"estate-service/internal/core/port"

	"github.com/google/uuid"
)

// GetListingPageUseCase serves one window of the public listing feed,
// consulting the page cache before touching storage. Out-of-range limits
// are clamped rather than rejected.
type GetListingPageUseCase struct {
	storage port.PropertyStoragePort
	cache   port.ListingCachePort
}

func NewGetListingPageUseCase(storage port.PropertyStoragePort, cache port.ListingCachePort) *GetListingPageUseCase {
	return &GetListingPageUseCase{
		storage: storage,
		cache:   cache,
	}
}

func (uc *GetListingPageUseCase) Execute(ctx context.Context, cursor *uuid.UUID, limit int) (*domain.ListingPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetListingPage"})

	if limit <= 0 {
		limit = domain.DefaultPageSize
	}
	if limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}

	if page, ok := uc.cache.Get(cursor, limit); ok {
		ucLogger.Debug("Listing page served from cache", port.Fields{"limit": limit})
		return page, nil
	}

	page, err := uc.storage.GetPublishedPage(ctx, cursor, limit)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	uc.cache.Put(cursor, limit, page)

	ucLogger.Debug("Listing page fetched", port.Fields{
		"limit":    limit,
		"items":    len(page.Items),
		"has_more": page.HasMore,
	})
	return page, nil
}
