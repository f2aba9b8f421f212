package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shuldan/appcore/pkg/contracts"
)

type redisCache struct {
	client redis.UniversalClient
	prefix string
}

type RedisOption func(*redisCache)

// WithKeyPrefix namespaces every key so Clear only touches this
// application's entries.
func WithKeyPrefix(prefix string) RedisOption {
	return func(c *redisCache) {
		c.prefix = prefix
	}
}

func NewRedis(client redis.UniversalClient, opts ...RedisOption) contracts.Cache {
	c := &redisCache{
		client: client,
		prefix: "appcore:",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, ErrGetFailed.WithDetail("key", key).WithCause(err)
	}
	return value, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return ErrSetFailed.WithDetail("key", key).WithCause(err)
	}
	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return ErrDeleteFailed.WithDetail("key", key).WithCause(err)
	}
	return nil
}

func (c *redisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()

	batch := make([]string, 0, 100)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return ErrClearFailed.WithCause(err)
		}
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return ErrClearFailed.WithCause(err)
	}
	return flush()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
