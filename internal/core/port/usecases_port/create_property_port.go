package usecases_port

import (
	"context"
	"estate-service/internal/core/domain"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error)
}
