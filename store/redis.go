package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type redisStore struct {
	client *redis.Client
}

var _ Store = &redisStore{}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

// NewRedisClient constructs a client from the configured URL. Plain
// host:port addresses are accepted as well.
func NewRedisClient(cfg *Config) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		opts = &redis.Options{
			Addr: cfg.RedisURL,
		}
	}

	if cfg.RedisDB != 0 {
		opts.DB = cfg.RedisDB
	}
	if cfg.RedisPool > 0 {
		opts.PoolSize = cfg.RedisPool
	}

	return redis.NewClient(opts)
}

func newRedisStoreWithLifecycle(cfg *Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (Store, error) {
	client := NewRedisClient(cfg)
	s := NewRedisStore(client)

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Infow("connected to redis", "addr", client.Options().Addr)
			return s.Ping(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return s, nil
}

func (r *redisStore) Get(ctx context.Context, key string) (*string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("error fetching key %s: %w", key, err)
	}

	return &value, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("error storing key %s: %w", key, err)
	}

	return nil
}

func (r *redisStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}
