package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noplanb/backend/internal/models"
)

// activityChannel carries admin activity events to the websocket hub.
const activityChannel = "activity:events"

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client
func NewRedisClient(addr, password string, db int) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	return r.client.Close()
}

// Public list cache

// GetList returns the cached payload for a public list key, or nil on miss.
func (r *RedisClient) GetList(key string) ([]byte, error) {
	data, err := r.client.Get(r.ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return data, nil
}

// SetList stores a public list payload with a TTL.
func (r *RedisClient) SetList(key string, payload []byte, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, payload, ttl).Err()
}

// InvalidateList drops cached list payloads after an admin write so the
// next public read reflects the write.
func (r *RedisClient) InvalidateList(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(r.ctx, keys...).Err()
}

// Activity feed pub/sub

// PublishActivity broadcasts an admin activity event to connected dashboards.
func (r *RedisClient) PublishActivity(activity models.Activity) error {
	data, err := json.Marshal(activity)
	if err != nil {
		return err
	}
	return r.client.Publish(r.ctx, activityChannel, data).Err()
}

// SubscribeToActivity subscribes to the activity event channel.
func (r *RedisClient) SubscribeToActivity() *redis.PubSub {
	return r.client.Subscribe(r.ctx, activityChannel)
}
