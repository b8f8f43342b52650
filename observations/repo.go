package observations

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/tidepool-org/glucoguide/pointer"
	"github.com/tidepool-org/glucoguide/store"
)

type repository struct {
	store  store.Store
	logger *zap.SugaredLogger
}

var _ Repository = &repository{}

func NewStoreRepository(s store.Store, logger *zap.SugaredLogger) Repository {
	return &repository{
		store:  s,
		logger: logger,
	}
}

// NewRepository returns the store backed repository behind an LRU of
// decoded histories.
func NewRepository(s store.Store, cfg *Config, logger *zap.SugaredLogger) (Repository, error) {
	repo, err := NewCachingRepository(NewStoreRepository(s, logger), cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *repository) Get(ctx context.Context, username string) ([]Observation, error) {
	blob, err := r.store.Get(ctx, HistoryKey(username))
	if err != nil {
		return nil, err
	}
	if pointer.ToString(blob) == "" {
		return []Observation{}, nil
	}

	history := make([]Observation, 0)
	if err := json.Unmarshal([]byte(*blob), &history); err != nil {
		return nil, fmt.Errorf("error decoding history of %s: %w", username, err)
	}

	return history, nil
}

func (r *repository) Exists(ctx context.Context, username string) (bool, error) {
	blob, err := r.store.Get(ctx, HistoryKey(username))
	if err != nil {
		return false, err
	}

	return pointer.ToString(blob) != "", nil
}

func (r *repository) Put(ctx context.Context, username string, history []Observation) error {
	blob, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("error encoding history of %s: %w", username, err)
	}

	return r.store.Set(ctx, HistoryKey(username), string(blob))
}
