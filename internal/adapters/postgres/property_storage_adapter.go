package postgres

import (
	"context"
	"errors"
	"fmt"

	"estate-service/internal/contextkeys"
	"estate-service/internal/core/domain"
	"estate-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyColumns = `
	id, name, slug, description, property_type, price, location, address,
	bedrooms, bathrooms, area, features, status, owner_id, thumbnail, images, created_at`

// PropertyStorageAdapter implements PropertyStoragePort for PostgreSQL.
//
// Image references live in nullable text columns holding the encoded wire
// form. Encoding happens on every write; decoding on read is lenient, a
// corrupt stored reference is logged and dropped rather than failing the
// whole row.
type PropertyStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPropertyStorageAdapter(pool *pgxpool.Pool) (*PropertyStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyStorageAdapter{
		pool: pool,
	}, nil
}

func (a *PropertyStorageAdapter) Create(ctx context.Context, p domain.Property) (*domain.Property, error) {
	thumbnail, images, err := encodeImages(p)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "create", Err: err}
	}

	sql := `
		INSERT INTO properties (
			id, name, slug, description, property_type, price, location, address,
			bedrooms, bathrooms, area, features, status, owner_id, thumbnail, images
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
		RETURNING ` + propertyColumns

	row := a.pool.QueryRow(ctx, sql,
		uuid.New(), p.Name, p.Slug, p.Description, p.PropertyType, p.Price, p.Location, p.Address,
		p.Bedrooms, p.Bathrooms, p.Area, p.Features, string(p.Status), p.OwnerID, thumbnail, images,
	)

	created, err := a.scanProperty(ctx, row)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "create", Err: err}
	}
	return created, nil
}

func (a *PropertyStorageAdapter) Update(ctx context.Context, id uuid.UUID, p domain.Property) (*domain.Property, error) {
	thumbnail, images, err := encodeImages(p)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "update", Err: err}
	}

	sql := `
		UPDATE properties SET
			name = $2, slug = $3, description = $4, property_type = $5, price = $6,
			location = $7, address = $8, bedrooms = $9, bathrooms = $10, area = $11,
			features = $12, status = $13, owner_id = $14, thumbnail = $15, images = $16
		WHERE id = $1
		RETURNING ` + propertyColumns

	row := a.pool.QueryRow(ctx, sql,
		id, p.Name, p.Slug, p.Description, p.PropertyType, p.Price,
		p.Location, p.Address, p.Bedrooms, p.Bathrooms, p.Area,
		p.Features, string(p.Status), p.OwnerID, thumbnail, images,
	)

	updated, err := a.scanProperty(ctx, row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "property", Key: id.String()}
		}
		return nil, &domain.RepositoryError{Op: "update", Err: err}
	}
	return updated, nil
}

func (a *PropertyStorageAdapter) UpdateImages(ctx context.Context, id uuid.UUID, thumbnail *domain.ImageReference, images []domain.ImageReference) (*domain.Property, error) {
	encodedThumbnail, err := domain.EncodeImageRef(thumbnail)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "update images", Err: err}
	}
	encodedImages, err := domain.EncodeImageRefList(images)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "update images", Err: err}
	}

	sql := `
		UPDATE properties SET thumbnail = $2, images = $3
		WHERE id = $1
		RETURNING ` + propertyColumns

	row := a.pool.QueryRow(ctx, sql, id, encodedThumbnail, encodedImages)
	updated, err := a.scanProperty(ctx, row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "property", Key: id.String()}
		}
		return nil, &domain.RepositoryError{Op: "update images", Err: err}
	}
	return updated, nil
}

func (a *PropertyStorageAdapter) SetStatus(ctx context.Context, id uuid.UUID, status domain.PropertyStatus) (*domain.Property, error) {
	sql := `
		UPDATE properties SET status = $2
		WHERE id = $1
		RETURNING ` + propertyColumns

	row := a.pool.QueryRow(ctx, sql, id, string(status))
	updated, err := a.scanProperty(ctx, row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "property", Key: id.String()}
		}
		return nil, &domain.RepositoryError{Op: "set status", Err: err}
	}
	return updated, nil
}

func (a *PropertyStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := a.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return &domain.RepositoryError{Op: "delete", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "property", Key: id.String()}
	}
	return nil
}

func (a *PropertyStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	sql := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	row := a.pool.QueryRow(ctx, sql, id)
	property, err := a.scanProperty(ctx, row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &domain.RepositoryError{Op: "get by id", Err: err}
	}
	return property, nil
}

func (a *PropertyStorageAdapter) GetBySlug(ctx context.Context, slug string) (*domain.Property, error) {
	sql := `SELECT ` + propertyColumns + ` FROM properties WHERE slug = $1 AND status = $2`

	row := a.pool.QueryRow(ctx, sql, slug, string(domain.StatusPublished))
	property, err := a.scanProperty(ctx, row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &domain.RepositoryError{Op: "get by slug", Err: err}
	}
	return property, nil
}

func (a *PropertyStorageAdapter) GetAll(ctx context.Context) ([]domain.Property, error) {
	sql := `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at DESC, id DESC`

	rows, err := a.pool.Query(ctx, sql)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "get all", Err: err}
	}
	defer rows.Close()

	properties, err := a.scanProperties(ctx, rows)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "get all", Err: err}
	}
	return properties, nil
}

// GetPublishedPage fetches limit+1 rows so the caller can tell whether a
// further page exists without a separate count query. The cursor names the
// last row of the previous page; pagination resumes strictly after its
// (created_at, id) position. A cursor pointing at a deleted row matches
// nothing and yields an empty page.
func (a *PropertyStorageAdapter) GetPublishedPage(ctx context.Context, cursor *uuid.UUID, limit int) (*domain.ListingPage, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if cursor == nil {
		sql := `
			SELECT ` + propertyColumns + `
			FROM properties
			WHERE status = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2`
		rows, err = a.pool.Query(ctx, sql, string(domain.StatusPublished), limit+1)
	} else {
		sql := `
			SELECT ` + propertyColumns + `
			FROM properties
			WHERE status = $1
			  AND (created_at, id) < (
				SELECT created_at, id FROM properties WHERE id = $2
			  )
			ORDER BY created_at DESC, id DESC
			LIMIT $3`
		rows, err = a.pool.Query(ctx, sql, string(domain.StatusPublished), *cursor, limit+1)
	}
	if err != nil {
		return nil, &domain.RepositoryError{Op: "get published page", Err: err}
	}
	defer rows.Close()

	fetched, err := a.scanProperties(ctx, rows)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "get published page", Err: err}
	}

	page := domain.BuildListingPage(fetched, limit)
	return &page, nil
}

func encodeImages(p domain.Property) (*string, *string, error) {
	thumbnail, err := domain.EncodeImageRef(p.Thumbnail)
	if err != nil {
		return nil, nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	images, err := domain.EncodeImageRefList(p.Images)
	if err != nil {
		return nil, nil, fmt.Errorf("encode images: %w", err)
	}
	return thumbnail, images, nil
}

func (a *PropertyStorageAdapter) scanProperty(ctx context.Context, row pgx.Row) (*domain.Property, error) {
	var (
		p            domain.Property
		status       string
		rawThumbnail *string
		rawImages    *string
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.PropertyType, &p.Price, &p.Location, &p.Address,
		&p.Bedrooms, &p.Bathrooms, &p.Area, &p.Features, &status, &p.OwnerID, &rawThumbnail, &rawImages, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = domain.PropertyStatus(status)
	if p.Features == nil {
		p.Features = []string{}
	}

	a.decodeImages(ctx, &p, rawThumbnail, rawImages)
	return &p, nil
}

func (a *PropertyStorageAdapter) scanProperties(ctx context.Context, rows pgx.Rows) ([]domain.Property, error) {
	properties := make([]domain.Property, 0)
	for rows.Next() {
		p, err := a.scanProperty(ctx, rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return properties, nil
}

// decodeImages fills the image fields from their stored wire form. Rows
// with malformed stored references still load; the bad reference is
// dropped and logged so the record stays readable and fixable.
func (a *PropertyStorageAdapter) decodeImages(ctx context.Context, p *domain.Property, rawThumbnail, rawImages *string) {
	logger := contextkeys.LoggerFromContext(ctx)

	thumbnail, err := domain.DecodeImageRef(rawThumbnail)
	if err != nil {
		logger.Warn("Dropping malformed stored thumbnail reference", port.Fields{
			"property_id": p.ID.String(),
			"error":       err.Error(),
		})
	} else {
		p.Thumbnail = thumbnail
	}

	images, err := domain.DecodeImageRefList(rawImages)
	if err != nil {
		logger.Warn("Dropping malformed stored image list", port.Fields{
			"property_id": p.ID.String(),
			"error":       err.Error(),
		})
		p.Images = []domain.ImageReference{}
		return
	}
	p.Images = images
}
