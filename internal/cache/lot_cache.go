// Package cache keeps read-through snapshots of lots in redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"auction-engine/internal/models"

	"github.com/redis/go-redis/v9"
)

// LotCache stores committed lot snapshots for fast reads. Writers invalidate after commit.
//
// A reader that misses takes the lot's generation before reading the store and hands it
// to Set. Invalidate bumps the generation, so a snapshot read before a later commit is
// dropped instead of overwriting the invalidation.
type LotCache interface {
	Get(ctx context.Context, lotID string) (models.Lot, bool, error)
	Generation(ctx context.Context, lotID string) (int64, error)
	Set(ctx context.Context, lot models.Lot, gen int64) error
	Invalidate(ctx context.Context, lotID string) error
}

// generationTTL keeps idle counters from piling up. An expired counter reads as 0 and
// the next Invalidate restarts it at 1, so a reader holding an older value still misses.
const generationTTL = 24 * time.Hour

func lotKey(lotID string) string {
	return fmt.Sprintf("lot:%s", lotID)
}

func genKey(lotID string) string {
	return fmt.Sprintf("lot:%s:gen", lotID)
}

// setIfGeneration stores ARGV[2] under KEYS[1] only while KEYS[2] still holds ARGV[1]
var setIfGeneration = redis.NewScript(`
local gen = redis.call('GET', KEYS[2])
if (gen or '0') ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// RedisLotCache is a LotCache backed by redis string keys with a TTL
type RedisLotCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewRedisLotCache(client *redis.Client, ttl time.Duration) *RedisLotCache {
	return &RedisLotCache{Redis: client, TTL: ttl}
}

func (c *RedisLotCache) Get(ctx context.Context, lotID string) (models.Lot, bool, error) {
	raw, err := c.Redis.Get(ctx, lotKey(lotID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Lot{}, false, nil
	}
	if err != nil {
		return models.Lot{}, false, fmt.Errorf("cache get %s: %w", lotID, err)
	}

	var lot models.Lot
	if err := json.Unmarshal(raw, &lot); err != nil {
		return models.Lot{}, false, fmt.Errorf("cache decode %s: %w", lotID, err)
	}
	return lot, true, nil
}

// Generation returns the lot's invalidation counter, 0 when it has never been bumped
func (c *RedisLotCache) Generation(ctx context.Context, lotID string) (int64, error) {
	gen, err := c.Redis.Get(ctx, genKey(lotID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache generation %s: %w", lotID, err)
	}
	return gen, nil
}

// Set stores lot unless the lot was invalidated after gen was read
func (c *RedisLotCache) Set(ctx context.Context, lot models.Lot, gen int64) error {
	data, err := json.Marshal(lot)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", lot.ID, err)
	}

	keys := []string{lotKey(lot.ID), genKey(lot.ID)}
	err = setIfGeneration.Run(ctx, c.Redis, keys, strconv.FormatInt(gen, 10), string(data), c.TTL.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("cache set %s: %w", lot.ID, err)
	}
	return nil
}

// Invalidate bumps the generation before it drops the snapshot, so no Set holding the
// old generation can land after the delete.
func (c *RedisLotCache) Invalidate(ctx context.Context, lotID string) error {
	if err := c.Redis.Incr(ctx, genKey(lotID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate %s: %w", lotID, err)
	}
	if err := c.Redis.Expire(ctx, genKey(lotID), generationTTL).Err(); err != nil {
		return fmt.Errorf("cache invalidate %s: %w", lotID, err)
	}
	if err := c.Redis.Del(ctx, lotKey(lotID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate %s: %w", lotID, err)
	}
	return nil
}

// Nop is used when no redis is configured; every Get misses
type Nop struct{}

func (Nop) Get(context.Context, string) (models.Lot, bool, error) { return models.Lot{}, false, nil }
func (Nop) Generation(context.Context, string) (int64, error)     { return 0, nil }
func (Nop) Set(context.Context, models.Lot, int64) error          { return nil }
func (Nop) Invalidate(context.Context, string) error              { return nil }
