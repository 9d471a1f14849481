package usecases_port

import (
	"context"
	"estate-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetListingPageUseCase interface {
	Execute(ctx context.Context, cursor *uuid.UUID, limit int) (*domain.ListingPage, error)
}
