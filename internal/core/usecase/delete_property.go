package usecase

import (
	"context"

	"estate-service/internal/contextkeys"
	"estate-service/internal/core/domain"
	"estate-service/internal/core/port"

	"github.com/google/uuid"
)

type DeletePropertyUseCase struct {
	storage port.PropertyStoragePort
	events  port.InvalidationPublisherPort
}

func NewDeletePropertyUseCase(storage port.PropertyStoragePort, events port.InvalidationPublisherPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{
		storage: storage,
		events:  events,
	}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.storage.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			ucLogger.Warn("Property not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return err
	}

	publishChange(ctx, uc.events, ucLogger, domain.ChangeDeleted, id)

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
