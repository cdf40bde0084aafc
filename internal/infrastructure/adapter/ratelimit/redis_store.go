package ratelimit

import (
	"context"
	"fmt"
	"time"

	errs "boomstream/internal/domain/error"
	"boomstream/internal/domain/port/ratelimit"
	"github.com/redis/go-redis/v9"
)

// admitScript prunes the window, checks capacity and records the slot in a
// single atomic step. Keys: the user's window. Args: max slots, window in
// milliseconds, admission instant in milliseconds, slot member.
var admitScript = redis.NewScript(`
local key = KEYS[1]
local max = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
if redis.call('ZCARD', key) >= max then
	return 0
end
redis.call('ZADD', key, now, member)
redis.call('PEXPIRE', key, window)
return 1
`)

// releaseByScoreScript removes a single member scored at the given instant,
// for slots that predate identity tracking and carry no member ID.
var releaseByScoreScript = redis.NewScript(`
local key = KEYS[1]
local at = ARGV[1]
local members = redis.call('ZRANGEBYSCORE', key, at, at, 'LIMIT', 0, 1)
if #members > 0 then
	redis.call('ZREM', key, members[1])
	return 1
end
return 0
`)

// RedisStore is a sliding-window admitter backed by a Redis sorted set per
// user. Atomicity of prune-check-record comes from Lua scripting, which
// also makes the store safe across multiple API instances.
type RedisStore struct {
	client     *redis.Client
	windowSize time.Duration
	maxSlots   int
	keyPrefix  string
}

// NewRedisStore creates a Redis-backed admitter allowing maxSlots comments
// per user within windowSize.
func NewRedisStore(client *redis.Client, windowSize time.Duration, maxSlots int) *RedisStore {
	return &RedisStore{
		client:     client,
		windowSize: windowSize,
		maxSlots:   maxSlots,
		keyPrefix:  "ratelimit:comments:",
	}
}

func (s *RedisStore) key(userID uint64) string {
	return fmt.Sprintf("%s%d", s.keyPrefix, userID)
}

// TryAdmit records the slot if the user still has capacity in the window
func (s *RedisStore) TryAdmit(ctx context.Context, userID uint64, slot ratelimit.Slot) error {
	res, err := admitScript.Run(ctx, s.client,
		[]string{s.key(userID)},
		s.maxSlots,
		s.windowSize.Milliseconds(),
		slot.At.UnixMilli(),
		slot.ID,
	).Int()
	if err != nil {
		return fmt.Errorf("%w: rate limit admission failed: %s", errs.ErrInternalServer, err.Error())
	}

	if res == 0 {
		return errs.NewRateLimitError(userID, s.windowSize.String())
	}
	return nil
}

// Release frees the slot recorded for the given comment. A missing member
// (never recorded, or already expired with the window) is a no-op.
func (s *RedisStore) Release(ctx context.Context, userID uint64, slot ratelimit.Slot) error {
	var err error
	if slot.ID != "" {
		err = s.client.ZRem(ctx, s.key(userID), slot.ID).Err()
	} else {
		err = releaseByScoreScript.Run(ctx, s.client,
			[]string{s.key(userID)},
			slot.At.UnixMilli(),
		).Err()
	}

	if err != nil && err != redis.Nil {
		return fmt.Errorf("%w: rate limit release failed: %s", errs.ErrInternalServer, err.Error())
	}
	return nil
}
