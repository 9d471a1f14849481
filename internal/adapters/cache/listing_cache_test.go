package cache

import (
	"sync"
	"testing"

	"estate-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageOf(n int) *domain.ListingPage {
	items := make([]domain.Property, n)
	for i := range items {
		items[i] = domain.Property{ID: uuid.New()}
	}
	return &domain.ListingPage{Items: items}
}

func TestListingCache(t *testing.T) {
	t.Run("miss before put, hit after", func(t *testing.T) {
		c := NewListingCache()

		_, ok := c.Get(nil, 12)
		assert.False(t, ok)

		stored := pageOf(3)
		c.Put(nil, 12, stored)

		got, ok := c.Get(nil, 12)
		require.True(t, ok)
		assert.Same(t, stored, got)
	})

	t.Run("different cursors are different entries", func(t *testing.T) {
		c := NewListingCache()
		cursor := uuid.New()

		c.Put(nil, 12, pageOf(1))

		_, ok := c.Get(&cursor, 12)
		assert.False(t, ok)
	})

	t.Run("different limits are different entries", func(t *testing.T) {
		c := NewListingCache()

		c.Put(nil, 12, pageOf(1))

		_, ok := c.Get(nil, 24)
		assert.False(t, ok)
	})

	t.Run("clear drops everything", func(t *testing.T) {
		c := NewListingCache()
		cursor := uuid.New()

		c.Put(nil, 12, pageOf(1))
		c.Put(&cursor, 12, pageOf(2))
		c.Clear()

		_, ok := c.Get(nil, 12)
		assert.False(t, ok)
		_, ok = c.Get(&cursor, 12)
		assert.False(t, ok)
	})

	t.Run("usable after clear", func(t *testing.T) {
		c := NewListingCache()
		c.Clear()

		c.Put(nil, 12, pageOf(1))
		_, ok := c.Get(nil, 12)
		assert.True(t, ok)
	})

	t.Run("concurrent access", func(t *testing.T) {
		c := NewListingCache()
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				cursor := uuid.New()
				c.Put(&cursor, n, pageOf(1))
				c.Get(&cursor, n)
				if n%4 == 0 {
					c.Clear()
				}
			}(i)
		}
		wg.Wait()
	})
}
