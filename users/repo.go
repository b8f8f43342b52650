package users

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

func NewRepository(s store.Store, logger *zap.SugaredLogger) Repository {
	return &repository{
		store:  s,
		logger: logger,
	}
}

func (r *repository) List(ctx context.Context) ([]Profile, error) {
	blob, err := r.store.Get(ctx, UsersKey)
	if err != nil {
		return nil, err
	}
	if pointer.ToString(blob) == "" {
		return []Profile{}, nil
	}

	profiles := make([]Profile, 0)
	if err := json.Unmarshal([]byte(*blob), &profiles); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}

	return profiles, nil
}

func (r *repository) ReplaceAll(ctx context.Context, profiles []Profile) error {
	if profiles == nil {
		profiles = []Profile{}
	}

	blob, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("error encoding users: %w", err)
	}

	return r.store.Set(ctx, UsersKey, string(blob))
}

func (r *repository) Get(ctx context.Context, username string) (*Profile, error) {
	profiles, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range profiles {
		if p.Username == username {
			return &p, nil
		}
	}

	return nil, ErrNotFound
}

func (r *repository) Update(ctx context.Context, username string, profile Profile) error {
	profiles, err := r.List(ctx)
	if err != nil {
		return err
	}

	for i := range profiles {
		if profiles[i].Username == username {
			profiles[i] = profile
		}
	}

	return r.ReplaceAll(ctx, profiles)
}

func (r *repository) Exists(ctx context.Context) (bool, error) {
	blob, err := r.store.Get(ctx, UsersKey)
	if err != nil {
		return false, err
	}

	return pointer.ToString(blob) != "", nil
}
