package usecase

import (
	"context"
	"strconv"

	"estate-service/internal/contextkeys"
	"estate-service/internal/core/domain"
	"estate-service/internal/core/port"

	"github.com/google/uuid"
)

// UpdatePropertyImagesUseCase swaps out a property's thumbnail and gallery
// in one write. Both fields are replaced wholesale; callers wanting to keep
// the current gallery must send it back.
type UpdatePropertyImagesUseCase struct {
	storage port.PropertyStoragePort
	events  port.InvalidationPublisherPort
}

func NewUpdatePropertyImagesUseCase(storage port.PropertyStoragePort, events port.InvalidationPublisherPort) *UpdatePropertyImagesUseCase {
	return &UpdatePropertyImagesUseCase{
		storage: storage,
		events:  events,
	}
}

func (uc *UpdatePropertyImagesUseCase) Execute(ctx context.Context, id uuid.UUID, thumbnail *domain.ImageReference, images []domain.ImageReference) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdatePropertyImages",
		"property_id": id.String(),
	})

	ucLogger.Info("Use case started", port.Fields{"image_count": len(images)})

	if err := validateImageRefs(thumbnail, images); err != nil {
		ucLogger.Warn("Image references failed validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	updated, err := uc.storage.UpdateImages(ctx, id, thumbnail, images)
	if err != nil {
		if domain.IsNotFound(err) {
			ucLogger.Warn("Property not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	publishChange(ctx, uc.events, ucLogger, domain.ChangeImages, updated.ID)

	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}

func validateImageRefs(thumbnail *domain.ImageReference, images []domain.ImageReference) error {
	var fields []domain.FieldError
	if thumbnail != nil {
		if err := thumbnail.Validate(); err != nil {
			fields = append(fields, domain.FieldError{Field: "thumbnail", Message: err.Error()})
		}
	}
	for i, img := range images {
		if err := img.Validate(); err != nil {
			fields = append(fields, domain.FieldError{
				Field:   "images." + strconv.Itoa(i),
				Message: err.Error(),
			})
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
