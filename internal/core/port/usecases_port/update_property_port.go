package usecases_port

import (
	"context"
	"estate-service/internal/core/domain"

	"github.com/google/uuid"
)

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, id uuid.UUID, draft domain.PropertyDraft) (*domain.Property, error)
}
