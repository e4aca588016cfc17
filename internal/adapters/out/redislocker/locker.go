// Package redislocker implements ports.Locker. RedisLocker serializes across
// service instances with bsm/redislock; LocalLocker serializes within one
// process and is used when no Redis address is configured.
package redislocker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealerorders/internal/core/ports"

	"github.com/bsm/redislock"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "lock:"

// RedisLocker obtains short-lived Redis locks, retrying linearly until wait
// has passed.
type RedisLocker struct {
	client *redislock.Client
	ttl    time.Duration
	wait   time.Duration
	log    logrus.FieldLogger
}

// NewRedisLocker wraps a go-redis client. ttl bounds how long a crashed
// holder can block the key.
func NewRedisLocker(client redislock.RedisClient, ttl, wait time.Duration, log logrus.FieldLogger) *RedisLocker {
	return &RedisLocker{
		client: redislock.New(client),
		ttl:    ttl,
		wait:   wait,
		log:    log.WithField("component", "redislocker"),
	}
}

func (l *RedisLocker) Obtain(ctx context.Context, key string) (func(context.Context), error) {
	const step = 50 * time.Millisecond

	retries := int(l.wait / step)
	lock, err := l.client.Obtain(ctx, keyPrefix+key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(step), retries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("%w: %s", ports.ErrLockNotObtained, key)
	}
	if err != nil {
		return nil, fmt.Errorf("obtain lock %s: %w", key, err)
	}

	return func(ctx context.Context) {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			l.log.WithError(err).WithField("key", key).Warn("release lock failed")
		}
	}, nil
}
