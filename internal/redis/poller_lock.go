package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// acquire takes the key or extends it when this owner already holds it.
var acquireScript = redis.NewScript(`
local cur = redis.call("GET", KEYS[1])
if cur == false then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
	return 1
end
if cur == ARGV[1] then
	redis.call("PEXPIRE", KEYS[1], ARGV[2])
	return 1
end
return 0
`)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// PollerLock is a lease that keeps a single incident poller active across instances.
type PollerLock struct {
	client *redis.Client
	key    string
	owner  string
	ttl    time.Duration
}

func NewPollerLock(client *redis.Client, key string, ttl time.Duration) *PollerLock {
	return &PollerLock{
		client: client,
		key:    key,
		owner:  uuid.NewString(),
		ttl:    ttl,
	}
}

// Acquire reports whether this instance holds the lease after the call.
func (l *PollerLock) Acquire(ctx context.Context) (bool, error) {
	n, err := acquireScript.Run(ctx, l.client, []string{l.key}, l.owner, l.ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (l *PollerLock) Release(ctx context.Context) error {
	return releaseScript.Run(ctx, l.client, []string{l.key}, l.owner).Err()
}
