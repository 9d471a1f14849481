package usecase

import (
	"context"

	"estate-service/internal/contextkeys"
	"estate-service/internal/core/domain"
	"estate-service/internal/core/port"
)

// GetPropertyBySlugUseCase serves the public detail page: only PUBLISHED
// properties resolve.
type GetPropertyBySlugUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetPropertyBySlugUseCase(storage port.PropertyStoragePort) *GetPropertyBySlugUseCase {
	return &GetPropertyBySlugUseCase{storage: storage}
}

// Execute returns (nil, nil) when no published property has the slug.
func (uc *GetPropertyBySlugUseCase) Execute(ctx context.Context, slug string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetPropertyBySlug",
		"slug":     slug,
	})

	property, err := uc.storage.GetBySlug(ctx, slug)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if property == nil {
		ucLogger.Debug("No published property for slug", nil)
		return nil, nil
	}
	return property, nil
}
