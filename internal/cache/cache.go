package cache

import "time"

// Cache is the in-process layer kept in front of redis lookups.
type Cache interface {
	Get(key any) (any, bool)
	SetWithTTL(key, value any, cost int64, ttl time.Duration) bool
	Del(key any)
	Clear()
}
