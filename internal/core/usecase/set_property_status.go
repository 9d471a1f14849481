package usecase

import (
	"context"

	"estate-service/internal/contextkeys"
	"estate-service/internal/core/domain"
	"estate-service/internal/core/port"

	"github.com/google/uuid"
)

// SetPropertyStatusUseCase moves a property through its lifecycle. Every
// transition between the three statuses is allowed, and setting the current
// status again is a no-op write.
type SetPropertyStatusUseCase struct {
	storage port.PropertyStoragePort
	events  port.InvalidationPublisherPort
}

func NewSetPropertyStatusUseCase(storage port.PropertyStoragePort, events port.InvalidationPublisherPort) *SetPropertyStatusUseCase {
	return &SetPropertyStatusUseCase{
		storage: storage,
		events:  events,
	}
}

func (uc *SetPropertyStatusUseCase) Execute(ctx context.Context, id uuid.UUID, status domain.PropertyStatus) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "SetPropertyStatus",
		"property_id": id.String(),
		"status":      string(status),
	})

	ucLogger.Info("Use case started", nil)

	if !status.IsValid() {
		ucLogger.Warn("Rejected unknown status", nil)
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "status", Message: "must be one of DRAFT, PUBLISHED, UNPUBLISHED"},
		}}
	}

	updated, err := uc.storage.SetStatus(ctx, id, status)
	if err != nil {
		if domain.IsNotFound(err) {
			ucLogger.Warn("Property not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	publishChange(ctx, uc.events, ucLogger, domain.ChangeStatus, updated.ID)

	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
