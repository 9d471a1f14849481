package usecases_port

import (
	"context"
	"estate-service/internal/core/domain"

	"github.com/google/uuid"
)

type SetPropertyStatusUseCase interface {
	Execute(ctx context.Context, id uuid.UUID, status domain.PropertyStatus) (*domain.Property, error)
}
