package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

var (
	ContextTimeout = time.Duration(20) * time.Second
)

//go:generate mockgen --build_flags=--mod=mod -source=./store.go -destination=./test/mock_store.go -package test MockStore

// Store is a string-valued key-value store. Values are opaque to the store.
type Store interface {
	// Get returns nil when the key is absent.
	Get(ctx context.Context, key string) (*string, error)
	Set(ctx context.Context, key string, value string) error
	Ping(ctx context.Context) error
}

// NewStore returns the backend selected by the configuration. Connections
// are established and released with the application lifecycle.
func NewStore(cfg *Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (Store, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		return newRedisStoreWithLifecycle(cfg, logger, lifecycle)
	case BackendMongo, "":
		return newMongoStoreWithLifecycle(cfg, logger, lifecycle)
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Backend)
	}
}

func NewDbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), ContextTimeout)
}
