package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

// Policy bounds how a failed load is retried.
type Policy struct {
	MaxRetries  uint64
	Interval    time.Duration
	Exponential bool
}

// DefaultPolicy retries once after half a second.
var DefaultPolicy = Policy{
	MaxRetries: 1,
	Interval:   500 * time.Millisecond,
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	var b backoff.BackOff
	if p.Exponential {
		eb := backoff.NewExponentialBackOff()
		eb.InitialInterval = p.Interval
		// attempts are bounded by MaxRetries only
		eb.MaxElapsedTime = 0
		b = eb
	} else {
		b = backoff.NewConstantBackOff(p.Interval)
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx)
}

func notify(name string) backoff.Notify {
	return func(err error, next time.Duration) {
		log.Warnf("retry [%s] in %s: %s", name, next, err)
	}
}

// Permanent wraps err so that it is returned right away, without retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do calls fn until it succeeds, returns a permanent error, or the policy
// runs out of retries.
func Do(ctx context.Context, name string, policy Policy, fn func(ctx context.Context) error) error {
	return backoff.RetryNotify(func() error {
		return fn(ctx)
	}, policy.backOff(ctx), notify(name))
}

// Load is Do for calls returning a value.
func Load[T any](ctx context.Context, name string, policy Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	return backoff.RetryNotifyWithData(func() (T, error) {
		return fn(ctx)
	}, policy.backOff(ctx), notify(name))
}
