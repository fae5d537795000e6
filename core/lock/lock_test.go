package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"cdn-manager/core/faults"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the commands the locker uses on a map.
type fakeRedis struct {
	redis.Cmdable
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, exists := f.values[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) EvalSha(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	if f.values[keys[0]] == args[0].(string) {
		delete(f.values, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func TestRedisLocker_AcquireAndRelease(t *testing.T) {
	client := newFakeRedis()
	locker := NewRedisLocker(client, time.Minute, "test:")

	release, err := locker.Acquire(context.Background(), "origin/web.example.com")
	require.NoError(t, err)
	assert.Contains(t, client.values, "test:origin/web.example.com")
	assert.Equal(t, time.Minute, client.ttls["test:origin/web.example.com"])

	_, err = locker.Acquire(context.Background(), "origin/web.example.com")
	assert.True(t, faults.IsCategory(err, faults.ConflictError))

	require.NoError(t, release(context.Background()))
	assert.NotContains(t, client.values, "test:origin/web.example.com")

	_, err = locker.Acquire(context.Background(), "origin/web.example.com")
	assert.NoError(t, err)
}

func TestRedisLocker_ReleaseKeepsForeignLock(t *testing.T) {
	client := newFakeRedis()
	locker := NewRedisLocker(client, 0, "")

	release, err := locker.Acquire(context.Background(), "k")
	require.NoError(t, err)

	// The lock expired and another process took it.
	client.values["k"] = "someone-else"

	require.NoError(t, release(context.Background()))
	assert.Equal(t, "someone-else", client.values["k"])
	assert.Equal(t, 2*time.Minute, locker.ttl)
}

func TestRedisLocker_TransportError(t *testing.T) {
	client := newFakeRedis()
	client.err = errors.New("connection refused")

	_, err := NewRedisLocker(client, time.Second, "").Acquire(context.Background(), "k")
	assert.True(t, faults.IsCategory(err, faults.TransportError))
}

func TestNopLocker(t *testing.T) {
	release, err := NopLocker{}.Acquire(context.Background(), "k")
	require.NoError(t, err)
	assert.NoError(t, release(context.Background()))
}

func TestConnect(t *testing.T) {
	client, err := Connect(context.Background(), "redis://localhost:6379/2")
	require.NoError(t, err)
	assert.Equal(t, 2, client.Options().DB)

	client, err = Connect(context.Background(), "localhost:6380")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6380", client.Options().Addr)

	_, err = Connect(context.Background(), "redis://localhost:6379/notadb")
	assert.Error(t, err)
}
