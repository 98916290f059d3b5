package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

var _ Cache = (*RistrettoCache)(nil)

type RistrettoCache struct {
	mainCache *ristretto.Cache
}

// NewRistrettoCache creates a cache bounded by maxCost, where each entry
// costs what its setter says (1 per session by default).
func NewRistrettoCache(maxCost int64) (*RistrettoCache, error) {
	mainCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10, // number of keys to track frequency of
		MaxCost:     maxCost,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}

	return &RistrettoCache{
		mainCache: mainCache,
	}, nil
}

func (rc *RistrettoCache) Get(key any) (any, bool) {
	return rc.mainCache.Get(key)
}

// SetWithTTL stores the value and waits for the write buffers to flush, so
// a following Get sees it.
func (rc *RistrettoCache) SetWithTTL(key, value any, cost int64, ttl time.Duration) bool {
	ok := rc.mainCache.SetWithTTL(key, value, cost, ttl)
	rc.mainCache.Wait()
	return ok
}

func (rc *RistrettoCache) Del(key any) {
	rc.mainCache.Del(key)
}

func (rc *RistrettoCache) Clear() {
	rc.mainCache.Clear()
}

func (rc *RistrettoCache) Close() {
	rc.mainCache.Close()
}
