package port

import (
	"context"
	"estate-service/internal/core/domain"

	"github.com/google/uuid"
)

// PropertyStoragePort is the persistence contract for the property catalog.
//
// Create and Update receive an already-validated record with the slug
// derived and the owner resolved; the adapter assigns id and createdAt on
// Create. GetByID and GetBySlug return (nil, nil) when nothing matches;
// absence is not an error on lookups. Mutations targeting a missing id fail
// with *domain.NotFoundError.
type PropertyStoragePort interface {
	Create(ctx context.Context, p domain.Property) (*domain.Property, error)
	Update(ctx context.Context, id uuid.UUID, p domain.Property) (*domain.Property, error)

	// UpdateImages replaces both image fields. Passing nil clears a field:
	// the operation is a replace, never a merge.
	UpdateImages(ctx context.Context, id uuid.UUID, thumbnail *domain.ImageReference, images []domain.ImageReference) (*domain.Property, error)

	SetStatus(ctx context.Context, id uuid.UUID, status domain.PropertyStatus) (*domain.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)

	// GetBySlug looks up a PUBLISHED property by its slug (public detail page).
	GetBySlug(ctx context.Context, slug string) (*domain.Property, error)

	// GetAll returns every property regardless of status, createdAt
	// descending. Dashboard use only.
	GetAll(ctx context.Context) ([]domain.Property, error)

	// GetPublishedPage fetches one window of PUBLISHED properties ordered by
	// createdAt desc (id desc as tie-break), starting strictly after the
	// record the cursor points at.
	GetPublishedPage(ctx context.Context, cursor *uuid.UUID, limit int) (*domain.ListingPage, error)
}
