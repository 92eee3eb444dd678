package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
)

var _ domain.AuctionStatusCache = (*RedisStatusCache)(nil)

// RedisStatusCache mirrors the persisted auction status for cheap reads by the
// websocket layer. MySQL stays authoritative; a cache miss is not an error.
type RedisStatusCache struct {
	client *redis.Client
}

func NewRedisStatusCache(client *redis.Client) *RedisStatusCache {
	return &RedisStatusCache{client: client}
}

func (r *RedisStatusCache) SetAuctionStatus(ctx context.Context, auctionID string, status domain.AuctionStatus) error {
	key := fmt.Sprintf("auction:%s:status", auctionID)
	return r.client.Set(ctx, key, status.String(), 0).Err()
}

func (r *RedisStatusCache) GetAuctionStatus(ctx context.Context, auctionID string) (domain.AuctionStatus, bool, error) {
	key := fmt.Sprintf("auction:%s:status", auctionID)

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return domain.AuctionScheduled, false, nil
		}
		return domain.AuctionScheduled, false, err
	}

	status, ok := domain.ParseAuctionStatus(result)
	if !ok {
		return domain.AuctionScheduled, false, fmt.Errorf("unknown cached status %q", result)
	}

	return status, true, nil
}
