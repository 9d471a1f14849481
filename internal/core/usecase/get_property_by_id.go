package usecase

import (
	"context"

	"estate-service/internal/contextkeys"
	"estate-service/internal/core/domain"
	"estate-service/internal/core/port"

	"github.com/google/uuid"
)

type GetPropertyByIDUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetPropertyByIDUseCase(storage port.PropertyStoragePort) *GetPropertyByIDUseCase {
	return &GetPropertyByIDUseCase{storage: storage}
}

// Execute returns (nil, nil) when the id does not exist.
func (uc *GetPropertyByIDUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyByID",
		"property_id": id.String(),
	})

	property, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if property == nil {
		ucLogger.Debug("Property not found", nil)
		return nil, nil
	}
	return property, nil
}
