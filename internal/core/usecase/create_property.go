package usecase

import (
	"context"
	"time"

	"estate-service/internal/contextkeys"
	"estate-service/internal/core/domain"
	"estate-service/internal/core/port"

	"github.com/google/uuid"
)

// CreatePropertyUseCase validates a draft, derives its slug, resolves the
// owner and persists a new property.
type CreatePropertyUseCase struct {
	storage   port.PropertyStoragePort
	validator port.PropertyValidatorPort
	events    port.InvalidationPublisherPort
}

func NewCreatePropertyUseCase(storage port.PropertyStoragePort, validator port.PropertyValidatorPort, events port.InvalidationPublisherPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		storage:   storage,
		validator: validator,
		events:    events,
	}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"name":     draft.Name,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.validator.ValidateDraft(draft); err != nil {
		ucLogger.Warn("Draft failed schema validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	record := draftToProperty(ctx, draft)

	created, err := uc.storage.Create(ctx, record)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	publishChange(ctx, uc.events, ucLogger, domain.ChangeCreated, created.ID)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"property_id": created.ID.String(),
		"slug":        created.Slug,
	})
	return created, nil
}

// draftToProperty maps a validated draft onto a storable record: the slug
// is re-derived from the name on every write, and a missing owner falls
// back to the acting user from the session context.
func draftToProperty(ctx context.Context, draft domain.PropertyDraft) domain.Property {
	owner := draft.OwnerID
	if owner == nil {
		if userID := contextkeys.UserIDFromContext(ctx); userID != "" {
			owner = &userID
		}
	}

	features := draft.Features
	if features == nil {
		features = []string{}
	}

	return domain.Property{
		Name:         draft.Name,
		Slug:         domain.Slugify(draft.Name),
		Description:  draft.Description,
		PropertyType: draft.PropertyType,
		Price:        draft.Price,
		Location:     draft.Location,
		Address:      draft.Address,
		Bedrooms:     draft.Bedrooms,
		Bathrooms:    draft.Bathrooms,
		Area:         draft.Area,
		Features:     features,
		Status:       draft.Status,
		OwnerID:      owner,
		Thumbnail:    draft.Thumbnail,
		Images:       draft.Images,
	}
}

// publishChange announces a mutation, logging instead of failing: the write
// is already committed and remains the source of truth.
func publishChange(ctx context.Context, events port.InvalidationPublisherPort, logger port.LoggerPort, change domain.ChangeKind, id uuid.UUID) {
	event := domain.PropertiesChangedEvent{
		Change:     change,
		PropertyID: id,
		OccurredAt: time.Now().UTC(),
	}
	if err := events.PublishPropertiesChanged(ctx, event); err != nil {
		logger.Error("Failed to publish properties-changed event", err, port.Fields{
			"change": string(change),
		})
	}
}
