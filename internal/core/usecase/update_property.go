package usecase

import (
	"context"

	"estate-service/internal/contextkeys"
	"estate-service/internal/core/domain"
	"estate-service/internal/core/port"

	"github.com/google/uuid"
)

// UpdatePropertyUseCase replaces an existing property's editable fields with
// a validated draft. The slug follows the (possibly renamed) name.
type UpdatePropertyUseCase struct {
	storage   port.PropertyStoragePort
	validator port.PropertyValidatorPort
	events    port.InvalidationPublisherPort
}

func NewUpdatePropertyUseCase(storage port.PropertyStoragePort, validator port.PropertyValidatorPort, events port.InvalidationPublisherPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{
		storage:   storage,
		validator: validator,
		events:    events,
	}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id uuid.UUID, draft domain.PropertyDraft) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": id.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.validator.ValidateDraft(draft); err != nil {
		ucLogger.Warn("Draft failed schema validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	record := draftToProperty(ctx, draft)

	updated, err := uc.storage.Update(ctx, id, record)
	if err != nil {
		if domain.IsNotFound(err) {
			ucLogger.Warn("Property not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	publishChange(ctx, uc.events, ucLogger, domain.ChangeUpdated, updated.ID)

	ucLogger.Info("Use case finished successfully", port.Fields{"slug": updated.Slug})
	return updated, nil
}
