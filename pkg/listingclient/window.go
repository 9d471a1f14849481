package listingclient

import (
	"context"
	"sync"

	"estate-service/internal/core/domain"
)

// Window accumulates listing pages into one growing result set. It mirrors
// the infinite-scroll contract: each fetch appends the next page, repeated
// fetch calls while one is in flight are suppressed, and filters apply to
// everything loaded so far without refetching.
type Window struct {
	client *Client

	mu         sync.Mutex
	items      []domain.Property
	nextCursor *string
	hasMore    bool
	started    bool
	inFlight   bool
}

func NewWindow(client *Client) *Window {
	return &Window{
		client:  client,
		items:   []domain.Property{},
		hasMore: true,
	}
}

// FetchNextPage loads the next window and appends it. It reports false
// without a network call when everything is already loaded or another
// fetch is still running.
func (w *Window) FetchNextPage(ctx context.Context, limit int) (bool, error) {
	w.mu.Lock()
	if w.inFlight || (w.started && !w.hasMore) {
		w.mu.Unlock()
		return false, nil
	}
	w.inFlight = true
	cursor := w.nextCursor
	w.mu.Unlock()

	page, err := w.client.GetPage(ctx, cursor, limit)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false
	if err != nil {
		return false, err
	}

	w.started = true
	w.items = append(w.items, page.Items...)
	w.nextCursor = page.NextCursor
	w.hasMore = page.HasMore
	return true, nil
}

// Items returns a copy of everything loaded so far, in feed order.
func (w *Window) Items() []domain.Property {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.Property, len(w.items))
	copy(out, w.items)
	return out
}

// HasMore reports whether the feed has pages beyond what is loaded.
func (w *Window) HasMore() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.hasMore
}

// Visible applies the free-text query and filter criteria to the loaded
// items. Filtering never triggers a fetch; it narrows what is already
// here and widens again when criteria are relaxed.
func (w *Window) Visible(query string, criteria domain.FilterCriteria) []domain.Property {
	return domain.Visible(w.Items(), query, criteria)
}

// Reset drops all loaded pages so the next fetch starts from the top.
func (w *Window) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = []domain.Property{}
	w.nextCursor = nil
	w.hasMore = true
	w.started = false
}
