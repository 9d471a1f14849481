package usecases_port

import (
	"context"
	"estate-service/internal/core/domain"
)

type GetAllPropertiesUseCase interface {
	Execute(ctx context.Context) ([]domain.Property, error)
}
