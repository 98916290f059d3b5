package cache

import (
	"sync"
	"time"
)

var _ Cache = (*TestCache)(nil)

// TestCache is a map backed Cache with deterministic admission, for tests.
type TestCache struct {
	cache map[any]testEntry
	mutex sync.Mutex
	now   func() time.Time
}

type testEntry struct {
	value     any
	expiresAt time.Time
}

func NewTestCache() *TestCache {
	return &TestCache{
		cache: make(map[any]testEntry),
		now:   time.Now,
	}
}

func (tc *TestCache) Get(key any) (any, bool) {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	entry, ok := tc.cache[key]
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && tc.now().After(entry.expiresAt) {
		delete(tc.cache, key)
		return nil, false
	}
	return entry.value, true
}

func (tc *TestCache) SetWithTTL(key, value any, _ int64, ttl time.Duration) bool {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	entry := testEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = tc.now().Add(ttl)
	}
	tc.cache[key] = entry
	return true
}

func (tc *TestCache) Del(key any) {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	delete(tc.cache, key)
}

func (tc *TestCache) Clear() {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	tc.cache = make(map[any]testEntry)
}

func (tc *TestCache) Len() int {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	return len(tc.cache)
}
