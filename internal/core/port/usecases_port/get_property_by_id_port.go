package usecases_port

import (
	"context"
	"estate-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetPropertyByIDUseCase interface {
	// Execute returns (nil, nil) when the id does not exist.
	Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}
