package auth

import (
	"context"
	"errors"
	"time"

	"github.com/miguelofoliveir/pandafit-frontend/internal/cache"
	"github.com/miguelofoliveir/pandafit-frontend/internal/session"
)

const defaultCheckCacheTTL = time.Minute

type sessionLookup interface {
	Lookup(ctx context.Context, token string) (*session.Record, error)
}

// LoginChecker answers whether a token belongs to a live session, keeping
// positive answers in an in-process cache for a short while.
type LoginChecker struct {
	lookup   sessionLookup
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewLoginChecker(lookup sessionLookup, c cache.Cache) *LoginChecker {
	return &LoginChecker{
		lookup:   lookup,
		cache:    c,
		cacheTTL: defaultCheckCacheTTL,
	}
}

func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	if _, ok := lc.cache.Get(token); ok {
		return true, nil
	}

	record, err := lc.lookup.Lookup(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	lc.cache.SetWithTTL(token, record.User.ID, 1, lc.cacheTTL)
	return true, nil
}

// Forget drops the cached answer for token; called on logout.
func (lc *LoginChecker) Forget(token string) {
	lc.cache.Del(token)
}
