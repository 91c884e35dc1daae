package pricecache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	gocachestore "github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long a resolved fallback price stays usable.
const DefaultTTL = 5 * time.Minute

// FallbackPrice is the outcome of a price-range lookup for one
// origin/destination/date tuple. PriceCents is nil when the lookup succeeded
// but found no fare; that outcome is cached too, so repeated searches within
// the TTL window don't hammer the prices endpoint again.
type FallbackPrice struct {
	PriceCents *int   `json:"priceCents,omitempty"`
	Currency   string `json:"currency,omitempty"`
}

// PriceCache is an in-memory TTL cache for fallback prices, shared across
// searches for the lifetime of the process. Expired entries are evicted
// lazily on read; there is no background sweeper.
type PriceCache struct {
	Cache *cache.Cache[string]
}

// New creates a price cache whose entries expire after ttl.
func New(ttl time.Duration) *PriceCache {
	goCacheStore := gocachestore.NewGoCache(gocache.New(ttl, 0), store.WithExpiration(ttl))

	return &PriceCache{
		Cache: cache.New[string](goCacheStore),
	}
}

func cacheKey(originID string, destinationID string, date string) string {
	return fmt.Sprintf("%s-%s-%s", originID, destinationID, date)
}

// Get returns the cached fallback price for the tuple, if any. The second
// return value reports whether a live entry existed, even one recording a
// known-absent price.
func (p *PriceCache) Get(originID string, destinationID string, date string) (*FallbackPrice, bool) {
	value, err := p.Cache.Get(context.Background(), cacheKey(originID, destinationID, date))
	if err != nil {
		return nil, false
	}

	var price FallbackPrice
	if err := json.Unmarshal([]byte(value), &price); err != nil {
		return nil, false
	}

	return &price, true
}

// Set stores the fallback price for the tuple.
func (p *PriceCache) Set(originID string, destinationID string, date string, price *FallbackPrice) {
	encoded, err := json.Marshal(price)
	if err != nil {
		return
	}

	p.Cache.Set(context.Background(), cacheKey(originID, destinationID, date), string(encoded))
}

// Clear drops every entry. Mostly useful for test isolation.
func (p *PriceCache) Clear() {
	p.Cache.Clear(context.Background())
}
