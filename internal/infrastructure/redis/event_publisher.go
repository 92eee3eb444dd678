package redis

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
)

const eventChannel = "auction_events"

var _ domain.EventPublisher = (*RedisEventPublisher)(nil)

type RedisEventPublisher struct {
	client *redis.Client
}

func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{client: client}
}

func (r *RedisEventPublisher) PublishBidEvent(ctx context.Context, event *domain.BidEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return r.client.Publish(ctx, eventChannel, payload).Err()
}
