package rest

import (
	"time"

	"estate-service/internal/core/domain"
)

// propertyRequest is the write payload for create and full-replace update.
// Slug and id are never accepted from the wire. An omitted status means the
// caller is saving a draft.
type propertyRequest struct {
	Name         string                  `json:"name"`
	Description  string                  `json:"description"`
	PropertyType string                  `json:"propertyType"`
	Price        float64                 `json:"price"`
	Location     string                  `json:"location"`
	Address      *string                 `json:"address,omitempty"`
	Bedrooms     int                     `json:"bedrooms"`
	Bathrooms    int                     `json:"bathrooms"`
	Area         *float64                `json:"area,omitempty"`
	Features     []string                `json:"features"`
	Status       *domain.PropertyStatus  `json:"status,omitempty"`
	OwnerID      *string                 `json:"ownerId,omitempty"`
	Thumbnail    *domain.ImageReference  `json:"thumbnail,omitempty"`
	Images       []domain.ImageReference `json:"images,omitempty"`
}

func (r propertyRequest) toDraft() domain.PropertyDraft {
	status := domain.StatusDraft
	if r.Status != nil {
		status = *r.Status
	}
	return domain.PropertyDraft{
		Name:         r.Name,
		Description:  r.Description,
		PropertyType: r.PropertyType,
		Price:        r.Price,
		Location:     r.Location,
		Address:      r.Address,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		Area:         r.Area,
		Features:     r.Features,
		Status:       status,
		OwnerID:      r.OwnerID,
		Thumbnail:    r.Thumbnail,
		Images:       r.Images,
	}
}

type updateImagesRequest struct {
	Thumbnail *domain.ImageReference  `json:"thumbnail,omitempty"`
	Images    []domain.ImageReference `json:"images,omitempty"`
}

type propertyResponse struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Slug         string                  `json:"slug"`
	Description  string                  `json:"description"`
	PropertyType string                  `json:"propertyType"`
	Price        float64                 `json:"price"`
	Location     string                  `json:"location"`
	Address      *string                 `json:"address,omitempty"`
	Bedrooms     int                     `json:"bedrooms"`
	Bathrooms    int                     `json:"bathrooms"`
	Area         *float64                `json:"area,omitempty"`
	Features     []string                `json:"features"`
	Status       string                  `json:"status"`
	OwnerID      *string                 `json:"ownerId,omitempty"`
	Thumbnail    *domain.ImageReference  `json:"thumbnail,omitempty"`
	Images       []domain.ImageReference `json:"images"`
	CreatedAt    time.Time               `json:"createdAt"`
}

func toPropertyResponse(p domain.Property) propertyResponse {
	images := p.Images
	if images == nil {
		images = []domain.ImageReference{}
	}
	return propertyResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		PropertyType: p.PropertyType,
		Price:        p.Price,
		Location:     p.Location,
		Address:      p.Address,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Area:         p.Area,
		Features:     p.Features,
		Status:       string(p.Status),
		OwnerID:      p.OwnerID,
		Thumbnail:    p.Thumbnail,
		Images:       images,
		CreatedAt:    p.CreatedAt,
	}
}

func toPropertyResponses(properties []domain.Property) []propertyResponse {
	out := make([]propertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, toPropertyResponse(p))
	}
	return out
}

type listingPageResponse struct {
	Items      []propertyResponse `json:"items"`
	NextCursor *string            `json:"nextCursor"`
	HasMore    bool               `json:"hasMore"`
}

func toListingPageResponse(page *domain.ListingPage) listingPageResponse {
	resp := listingPageResponse{
		Items:   toPropertyResponses(page.Items),
		HasMore: page.HasMore,
	}
	if page.NextCursor != nil {
		cursor := page.NextCursor.String()
		resp.NextCursor = &cursor
	}
	return resp
}
