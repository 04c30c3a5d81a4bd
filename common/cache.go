package common

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// DecodeCache is an LRU cache of successfully decoded addresses. It is safe
// for concurrent access. Failed decodes are never cached.
type DecodeCache struct {
	cache *lru.Cache
	sync.Mutex
}

// NewDecodeCache creates a new DecodeCache.
// If maxEntries is zero, the cache has no limit.
func NewDecodeCache(maxEntries int) *DecodeCache {
	return &DecodeCache{cache: lru.New(maxEntries)}
}

// Decode returns the cached breakdown of address, decoding and caching it
// on a miss. The returned value is a copy owned by the caller.
func (c *DecodeCache) Decode(address string) (*DecodedAddress, error) {
	if decoded, ok := c.get(address); ok {
		return decoded, nil
	}

	decoded, err := Decode(address)
	if err != nil {
		return nil, err
	}

	c.Lock()
	defer c.Unlock()
	c.cache.Add(address, *decoded)
	return decoded, nil
}

func (c *DecodeCache) get(address string) (*DecodedAddress, bool) {
	c.Lock()
	defer c.Unlock()
	value, ok := c.cache.Get(address)
	if !ok {
		return nil, false
	}

	decoded := value.(DecodedAddress)
	return &decoded, true
}

// Len returns the number of items in the cache.
func (c *DecodeCache) Len() int {
	c.Lock()
	defer c.Unlock()
	return c.cache.Len()
}

// Clear purges all stored items from the cache.
func (c *DecodeCache) Clear() {
	c.Lock()
	defer c.Unlock()
	c.cache.Clear()
}
