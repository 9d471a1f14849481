// Package cache holds the in-memory listing page cache. Entries live until
// the next PropertiesChanged event clears the whole cache; there is no TTL
// because invalidation is event-driven.
package cache

import (
	"strconv"
	"sync"

	"estate-service/internal/core/domain"

	"github.com/google/uuid"
)

type ListingCache struct {
	mu    sync.Mutex
	pages map[string]*domain.ListingPage
}

func NewListingCache() *ListingCache {
	return &ListingCache{
		pages: make(map[string]*domain.ListingPage),
	}
}

func (c *ListingCache) Get(cursor *uuid.UUID, limit int) (*domain.ListingPage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	page, ok := c.pages[cacheKey(cursor, limit)]
	return page, ok
}

func (c *ListingCache) Put(cursor *uuid.UUID, limit int, page *domain.ListingPage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[cacheKey(cursor, limit)] = page
}

func (c *ListingCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages = make(map[string]*domain.ListingPage)
}

func cacheKey(cursor *uuid.UUID, limit int) string {
	key := "first"
	if cursor != nil {
		key = cursor.String()
	}
	return key + ":" + strconv.Itoa(limit)
}
