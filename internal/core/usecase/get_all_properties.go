package usecase

import (
	"context"

	"estate-service/internal/contextkeys"
	"estate-service/internal/core/domain"
	"estate-service/internal/core/port"
)

// GetAllPropertiesUseCase backs the management dashboard: every property,
// any status, newest first.
type GetAllPropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetAllPropertiesUseCase(storage port.PropertyStoragePort) *GetAllPropertiesUseCase {
	return &GetAllPropertiesUseCase{storage: storage}
}

func (uc *GetAllPropertiesUseCase) Execute(ctx context.Context) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetAllProperties"})

	properties, err := uc.storage.GetAll(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Debug("Fetched properties", port.Fields{"count": len(properties)})
	return properties, nil
}
