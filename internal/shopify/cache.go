package shopify

import (
	"sync"
	"time"

	"github.com/vemmiehq/vemmie-storefront/internal/catalog"
)

// snapshotCache holds the last fetched product list for the revalidation
// window. It is advisory only: a TTL of zero or less disables it and every
// read goes to Shopify.
type snapshotCache struct {
	ttl time.Duration

	mu        sync.RWMutex
	products  []catalog.Product
	fetchedAt time.Time
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{ttl: ttl}
}

func (c *snapshotCache) get() ([]catalog.Product, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.products != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.products, true
	}
	return nil, false
}

func (c *snapshotCache) set(products []catalog.Product) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
	c.fetchedAt = time.Now()
}
