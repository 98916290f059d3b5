package querycache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const minCacheSize = 512 * 1024

// Cache keeps recent backend reads as JSON, so fresh data is served without
// asking the backend again.
type Cache struct {
	store *freecache.Cache
	ttl   time.Duration
	group singleflight.Group

	// generation changes on every invalidation; guarded by mutex
	mutex          sync.Mutex
	generation     uint64
	metricsManager *metrics.Manager
}

func New(sizeBytes int, ttl time.Duration, metricsManager *metrics.Manager) *Cache {
	if sizeBytes < minCacheSize {
		sizeBytes = minCacheSize
	}
	return &Cache{
		store:          freecache.NewCache(sizeBytes),
		ttl:            ttl,
		metricsManager: metricsManager,
	}
}

func (c *Cache) expireSeconds() int {
	secs := int(c.ttl / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

func (c *Cache) countLookup(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterCacheLookups.WithLabelValues(result).Inc()
	}
}

// Fetch returns the cached value for key, or calls load once for all
// concurrent callers asking for the same key and caches what it returns.
// Errors are never cached.
func Fetch[T any](ctx context.Context, c *Cache, key Key, load func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if cached, err := c.store.Get([]byte(key)); err == nil {
		var val T
		if err := json.Unmarshal(cached, &val); err == nil {
			c.countLookup("hit")
			return val, nil
		}
		log.Warnf("query cache: drop undecodable entry [%s]", key)
		c.store.Del([]byte(key))
	} else if !errors.Is(err, freecache.ErrNotFound) {
		return zero, fmt.Errorf("query cache get [%s]: %w", key, err)
	}
	c.countLookup("miss")

	// callers only share a load started after the latest invalidation
	gen := c.currentGeneration()
	res, err, _ := c.group.Do(fmt.Sprintf("%s#%d", key, gen), func() (any, error) {
		val, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.putIfGeneration(key, val, gen)
		return val, nil
	})
	if err != nil {
		return zero, err
	}
	return res.(T), nil
}

func (c *Cache) currentGeneration() uint64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.generation
}

// putIfGeneration stores val unless an invalidation happened since gen was read.
func (c *Cache) putIfGeneration(key Key, val any, gen uint64) {
	encoded, err := json.Marshal(val)
	if err != nil {
		log.Errorf("query cache: encode [%s]: %s", key, err)
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.generation != gen {
		return
	}
	if err := c.store.Set([]byte(key), encoded, c.expireSeconds()); err != nil {
		// entry larger than the cache allows
		log.Warnf("query cache: set [%s]: %s", key, err)
	}
}

// Invalidate drops prefix and every key below it.
func (c *Cache) Invalidate(prefixes ...Key) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.generation++

	var toDelete [][]byte
	it := c.store.NewIterator()
	for entry := it.Next(); entry != nil; entry = it.Next() {
		key := Key(entry.Key)
		for _, prefix := range prefixes {
			if prefix.Covers(key) {
				toDelete = append(toDelete, entry.Key)
				break
			}
		}
	}
	for _, k := range toDelete {
		c.store.Del(k)
	}
}

// InvalidateAll empties the cache.
func (c *Cache) InvalidateAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.generation++
	c.store.Clear()
}

func (c *Cache) Len() int64 {
	return c.store.EntryCount()
}

func (c *Cache) HitRate() float64 {
	return c.store.HitRate()
}
