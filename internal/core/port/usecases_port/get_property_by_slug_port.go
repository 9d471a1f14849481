package usecases_port

import (
	"context"
	"estate-service/internal/core/domain"
)

type GetPropertyBySlugUseCase interface {
	// Execute returns (nil, nil) when no published property has the slug.
	Execute(ctx context.Context, slug string) (*domain.Property, error)
}
