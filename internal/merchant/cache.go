package merchant

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/lanternworks/nightmarket/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedMerchantEntry wraps a merchant with version metadata for cache invalidation
type cachedMerchantEntry struct {
	Version  string           `json:"version"`
	Merchant *domain.Merchant `json:"merchant"`
	CachedAt time.Time        `json:"cached_at"`
}

// merchantCache is an in-memory LRU for merchant lookups. Merchants are
// read-mostly reference data, so a short TTL keeps restock freshness
// without hitting the database on every trade.
type merchantCache struct {
	lru *expirable.LRU[string, *cachedMerchantEntry]
}

func newMerchantCache(size int, ttl time.Duration) *merchantCache {
	return &merchantCache{
		lru: expirable.NewLRU[string, *cachedMerchantEntry](size, nil, ttl),
	}
}

// Get retrieves a merchant from the cache.
// Returns (nil, false) if not cached, expired, or version mismatched.
func (c *merchantCache) Get(merchantID string) (*domain.Merchant, bool) {
	entry, found := c.lru.Get(merchantID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(merchantID)
		return nil, false
	}

	return entry.Merchant, true
}

// Set stores a merchant in the cache with the current schema version.
func (c *merchantCache) Set(merchantID string, merchant *domain.Merchant) {
	c.lru.Add(merchantID, &cachedMerchantEntry{
		Version:  CacheSchemaVersion,
		Merchant: merchant,
		CachedAt: time.Now(),
	})
}

// Clear removes all entries. Called after a restock pass so stale
// restocked_at values never outlive the job.
func (c *merchantCache) Clear() {
	c.lru.Purge()
}
