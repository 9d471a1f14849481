package domain

import (
	"time"

	"github.com/google/uuid"
)

// Listing page size bounds for the public grid.
const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// ListingPage is one window of the public property grid. It is transient:
// produced per request, never stored.
type ListingPage struct {
	Items      []Property
	NextCursor *uuid.UUID
	HasMore    bool
}

// BuildListingPage trims a limit+1 lookahead fetch into a page: if the
// storage returned more than limit rows there is at least one more page,
// the extra row is dropped, and the cursor is the id of the last retained
// row. Callers must pass rows already ordered createdAt desc, id desc.
func BuildListingPage(fetched []Property, limit int) ListingPage {
	page := ListingPage{Items: fetched}
	if len(fetched) > limit {
		page.Items = fetched[:limit]
		page.HasMore = true
		cursor := page.Items[limit-1].ID
		page.NextCursor = &cursor
	}
	return page
}

// ChangeKind enumerates the mutation kinds announced by PropertiesChanged.
type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeImages  ChangeKind = "images"
	ChangeStatus  ChangeKind = "status"
	ChangeDeleted ChangeKind = "deleted"
)

// PropertiesChangedEvent is the typed invalidation event published after
// every successful mutation. Consumers holding cached listing views drop
// them on receipt; the event intentionally carries no record payload, the
// store stays the single source of truth.
type PropertiesChangedEvent struct {
	Change     ChangeKind
	PropertyID uuid.UUID
	OccurredAt time.Time
}
