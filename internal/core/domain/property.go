package domain

import (
	"time"

	"github.com/google/uuid"
)

// PropertyStatus is the visibility state of a property. Only PUBLISHED
// records are ever served through the public listing path.
type PropertyStatus string

const (
	StatusDraft       PropertyStatus = "DRAFT"
	StatusPublished   PropertyStatus = "PUBLISHED"
	StatusUnpublished PropertyStatus = "UNPUBLISHED"
)

// IsValid reports whether s is one of the three known statuses.
func (s PropertyStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusUnpublished:
		return true
	}
	return false
}

// Property is the central catalog entity.
//
// Address, Area and OwnerID are pointers because absence is meaningful:
// a missing area means "unknown", never zero.
type Property struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	Description  string
	PropertyType string
	Price        float64
	Location     string
	Address      *string
	Bedrooms     int
	Bathrooms    int
	Area         *float64
	Features     []string
	Status       PropertyStatus
	OwnerID      *string
	Thumbnail    *ImageReference
	Images       []ImageReference
	CreatedAt    time.Time
}

// PropertyDraft is the validated input for create and full-replace update.
// Slug and ID are never accepted from the caller: the slug is re-derived
// from Name on every write and the id is server-assigned.
type PropertyDraft struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	PropertyType string           `json:"propertyType"`
	Price        float64          `json:"price"`
	Location     string           `json:"location"`
	Address      *string          `json:"address,omitempty"`
	Bedrooms     int              `json:"bedrooms"`
	Bathrooms    int              `json:"bathrooms"`
	Area         *float64         `json:"area,omitempty"`
	Features     []string         `json:"features"`
	Status       PropertyStatus   `json:"status"`
	OwnerID      *string          `json:"ownerId,omitempty"`
	Thumbnail    *ImageReference  `json:"thumbnail,omitempty"`
	Images       []ImageReference `json:"images,omitempty"`
}
