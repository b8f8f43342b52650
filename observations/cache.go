package observations

import (
	"context"
	"slices"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// CachingRepository keeps recently read histories in memory. A history is
// never modified after it has been written, so cached entries stay valid.
// Callers get their own copy of a cached history.
type CachingRepository struct {
	delegate Repository
	lru      *simplelru.LRU
	mu       *sync.Mutex
}

var _ Repository = &CachingRepository{}

func NewCachingRepository(delegate Repository, size int) (*CachingRepository, error) {
	var onEvict simplelru.EvictCallback
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}

	return &CachingRepository{
		delegate: delegate,
		lru:      lru,
		mu:       &sync.Mutex{},
	}, nil
}

func (c *CachingRepository) Get(ctx context.Context, username string) ([]Observation, error) {
	if history, ok := c.getCached(username); ok {
		return history, nil
	}

	history, err := c.delegate.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	// an empty history may still be backfilled later
	if len(history) > 0 {
		c.setCached(username, slices.Clone(history))
	}
	return history, nil
}

func (c *CachingRepository) Exists(ctx context.Context, username string) (bool, error) {
	if _, ok := c.getCached(username); ok {
		return true, nil
	}
	return c.delegate.Exists(ctx, username)
}

func (c *CachingRepository) Put(ctx context.Context, username string, history []Observation) error {
	if err := c.delegate.Put(ctx, username, history); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(username)
	return nil
}

func (c *CachingRepository) getCached(username string) ([]Observation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.lru.Get(username); ok {
		return slices.Clone(e.([]Observation)), true
	}
	return nil, false
}

func (c *CachingRepository) setCached(username string, history []Observation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.lru.Add(username, history)
}
