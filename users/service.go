package users

import (
	"context"
	"encoding/json"
	errs "errors"
	"os"

	"github.com/TwiN/deepmerge"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/glucoguide/errors"
	"github.com/tidepool-org/glucoguide/observations"
	"github.com/tidepool-org/glucoguide/summary"
)

// Service is the facade used by the presentation layer. Store failures are
// logged and converted to empty results instead of being returned.
type Service interface {
	// GetUserByUsername returns nil when the user doesn't exist or can't be read.
	GetUserByUsername(ctx context.Context, username string) *Profile
	UpdateUser(ctx context.Context, username string, profile Profile) bool
	// PatchUser merges the JSON object patch into the stored profile. The
	// username can't be changed.
	PatchUser(ctx context.Context, username string, patch []byte) (*Profile, error)
	// ImportUsersFromCSV replaces all users with those in the file at path
	// and returns the number of users imported.
	ImportUsersFromCSV(ctx context.Context, path string) int
	InitializeDatabase(ctx context.Context)
	GetHistory(ctx context.Context, username string) []observations.Observation
	GetAverages(ctx context.Context, username string) summary.Averages
}

type service struct {
	repo      Repository
	history   observations.Repository
	generator observations.Generator
	logger    *zap.SugaredLogger
}

var _ Service = &service{}

type Params struct {
	fx.In

	Repository Repository
	History    observations.Repository
	Generator  observations.Generator
	Logger     *zap.SugaredLogger
}

func NewService(p Params) Service {
	return &service{
		repo:      p.Repository,
		history:   p.History,
		generator: p.Generator,
		logger:    p.Logger,
	}
}

func (s *service) GetUserByUsername(ctx context.Context, username string) *Profile {
	profile, err := s.repo.Get(ctx, username)
	if errs.Is(err, ErrNotFound) {
		s.logger.Debugw("user not found", "username", username)
		return nil
	} else if err != nil {
		s.logger.Errorw("error getting user", "username", username, zap.Error(err))
		return nil
	}
	return profile
}

func (s *service) UpdateUser(ctx context.Context, username string, profile Profile) bool {
	if err := s.repo.Update(ctx, username, profile); err != nil {
		s.logger.Errorw("error updating user", "username", username, zap.Error(err))
		return false
	}
	return true
}

func (s *service) PatchUser(ctx context.Context, username string, patch []byte) (*Profile, error) {
	profile, err := s.repo.Get(ctx, username)
	if errs.Is(err, ErrNotFound) {
		return nil, err
	} else if err != nil {
		s.logger.Errorw("error getting user", "username", username, zap.Error(err))
		return nil, errors.InternalServerError
	}

	current, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}
	merged, err := deepmerge.JSON(current, patch, deepmerge.Config{PreventMultipleDefinitionsOfKeysWithPrimitiveValue: false})
	if err != nil {
		return nil, errors.BadRequest.WithMessage("invalid profile patch")
	}

	updated := Profile{}
	if err := json.Unmarshal(merged, &updated); err != nil {
		return nil, errors.BadRequest.WithMessage("invalid profile patch")
	}
	updated.Username = profile.Username

	if !s.UpdateUser(ctx, username, updated) {
		return nil, errors.InternalServerError
	}
	return &updated, nil
}

func (s *service) ImportUsersFromCSV(ctx context.Context, path string) int {
	logger := s.logger.With("importId", uuid.NewString(), "path", path)

	if _, err := os.Stat(path); err != nil {
		logger.Warnw("csv file not found", zap.Error(err))
		return 0
	}
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Errorw("error reading csv file", zap.Error(err))
		return 0
	}

	profiles := ParseCSV(string(content), logger)
	if len(profiles) == 0 {
		logger.Warnw("no valid users found in csv")
		return 0
	}

	if err := s.repo.ReplaceAll(ctx, profiles); err != nil {
		logger.Errorw("error storing imported users", zap.Error(err))
		return 0
	}

	logger.Infow("imported users from csv", "count", len(profiles))
	s.generator.GenerateAll(ctx, Usernames(profiles))
	return len(profiles)
}

func (s *service) InitializeDatabase(ctx context.Context) {
	exists, err := s.repo.Exists(ctx)
	if err != nil {
		s.logger.Errorw("error initializing database", zap.Error(err))
		return
	}

	if !exists {
		if err := s.repo.ReplaceAll(ctx, SeedProfiles()); err != nil {
			s.logger.Errorw("error initializing database", zap.Error(err))
			return
		}
		s.logger.Infow("default users initialized")
	}

	profiles, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("error initializing database", zap.Error(err))
		return
	}
	s.generator.GenerateAll(ctx, Usernames(profiles))
}

// GetHistory backfills the history of an existing user before reading it.
func (s *service) GetHistory(ctx context.Context, username string) []observations.Observation {
	if s.GetUserByUsername(ctx, username) == nil {
		return []observations.Observation{}
	}

	if err := s.generator.Generate(ctx, username); err != nil {
		s.logger.Errorw("error generating historical data", "username", username, zap.Error(err))
	}

	history, err := s.history.Get(ctx, username)
	if err != nil {
		s.logger.Errorw("error getting historical data", "username", username, zap.Error(err))
		return []observations.Observation{}
	}
	return history
}

func (s *service) GetAverages(ctx context.Context, username string) summary.Averages {
	return summary.CalculateAverages(s.GetHistory(ctx, username))
}
