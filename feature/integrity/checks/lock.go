package checks

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Pinger is the part of a redis client the lock check needs.
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// CheckLock pings the redis server backing the resource lock.
func CheckLock(ctx context.Context, client Pinger) Result {
	if err := client.Ping(ctx).Err(); err != nil {
		return failed("lock", err)
	}
	return Result{Name: "lock", Status: StatusOK}
}
