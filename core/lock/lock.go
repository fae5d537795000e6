package lock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cdn-manager/core/faults"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Release gives a lock back.
type Release func(ctx context.Context) error

// Locker acquires exclusive access to a resource key.
type Locker interface {
	// Acquire returns a ConflictError when another holder owns key.
	Acquire(ctx context.Context, key string) (Release, error)
}

// Connect initializes a Redis client from URL or host:port input.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			return nil, fmt.Errorf("parse redis url: %w", parseErr)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker implements Locker with redis SET NX.
type RedisLocker struct {
	client redis.Cmdable
	ttl    time.Duration
	prefix string
}

// NewRedisLocker builds a locker. A non-positive ttl defaults to two minutes.
func NewRedisLocker(client redis.Cmdable, ttl time.Duration, prefix string) *RedisLocker {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &RedisLocker{client: client, ttl: ttl, prefix: prefix}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (Release, error) {
	redisKey := l.prefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
	if err != nil {
		return nil, faults.Transport("failed to acquire lock "+key, err)
	}
	if !ok {
		return nil, faults.NewTypedError(faults.ConflictError, fmt.Sprintf("%s is being reconciled by another process", key), nil)
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err(); err != nil {
			return fmt.Errorf("failed to release lock %s: %w", key, err)
		}
		return nil
	}, nil
}

// NopLocker grants every lock.
type NopLocker struct{}

func (NopLocker) Acquire(context.Context, string) (Release, error) {
	return func(context.Context) error { return nil }, nil
}
