package usecases_port

import (
	"context"
	"estate-service/internal/core/domain"

	"github.com/google/uuid"
)

type UpdatePropertyImagesUseCase interface {
	Execute(ctx context.Context, id uuid.UUID, thumbnail *domain.ImageReference, images []domain.ImageReference) (*domain.Property, error)
}
