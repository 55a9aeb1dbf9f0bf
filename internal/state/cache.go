package state

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
)

// cachedView is the list of inventories one actor may see at a given state version
type cachedView struct {
	Version     uint64
	Inventories []domain.Inventory
	CachedAt    time.Time
}

// viewCache keeps per-actor visible inventory lists.
// Entries built from an older state version are treated as misses.
type viewCache struct {
	lru *expirable.LRU[string, *cachedView]
}

func newViewCache(size int, ttl time.Duration) *viewCache {
	if size <= 0 {
		size = DefaultViewCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultViewCacheTTL
	}
	return &viewCache{
		lru: expirable.NewLRU[string, *cachedView](size, nil, ttl),
	}
}

// Get returns the cached list if it was built at version
func (c *viewCache) Get(actorID string, version uint64) ([]domain.Inventory, bool) {
	entry, found := c.lru.Get(actorID)
	if !found {
		return nil, false
	}
	if entry.Version != version {
		c.lru.Remove(actorID)
		return nil, false
	}
	return entry.Inventories, true
}

func (c *viewCache) Set(actorID string, version uint64, inventories []domain.Inventory) {
	c.lru.Add(actorID, &cachedView{
		Version:     version,
		Inventories: inventories,
		CachedAt:    time.Now(),
	})
}

// Clear drops every entry. Called on each commit and reload.
func (c *viewCache) Clear() {
	c.lru.Purge()
}

func (c *viewCache) Len() int {
	return c.lru.Len()
}
