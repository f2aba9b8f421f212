package cache

import (
	"github.com/redis/go-redis/v9"

	"github.com/shuldan/appcore/pkg/contracts"
)

// NewFromConfig builds a cache from the "cache" section:
//
//	cache:
//	  driver: memory | redis
//	  redis:
//	    addr: localhost:6379
//	    password: ""
//	    db: 0
//	    prefix: "appcore:"
func NewFromConfig(cfg contracts.Config) (contracts.Cache, error) {
	driver := cfg.GetString("cache.driver", "memory")

	switch driver {
	case "memory":
		return NewMemory(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.GetString("cache.redis.addr", "localhost:6379"),
			Password: cfg.GetString("cache.redis.password"),
			DB:       cfg.GetInt("cache.redis.db"),
		})
		var opts []RedisOption
		if prefix := cfg.GetString("cache.redis.prefix"); prefix != "" {
			opts = append(opts, WithKeyPrefix(prefix))
		}
		return NewRedis(client, opts...), nil
	default:
		return nil, ErrUnknownDriver.WithDetail("driver", driver)
	}
}
