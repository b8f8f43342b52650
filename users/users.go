package users

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/tidepool-org/glucoguide/errors"
)

const UsersKey = "users"

var ErrNotFound = fmt.Errorf("user %w", errors.NotFound)

var Module = fx.Provide(
	NewRepository,
	NewService,
)

type Profile struct {
	Username         string  `json:"username" bson:"username"`
	ControlLevel     string  `json:"controlLevel" bson:"controlLevel"`
	MinGlucose       float64 `json:"minGlucose" bson:"minGlucose"`
	MaxGlucose       float64 `json:"maxGlucose" bson:"maxGlucose"`
	CarbRatio        float64 `json:"carbRatio" bson:"carbRatio"`
	CorrectionFactor float64 `json:"correctionFactor" bson:"correctionFactor"`
}

//go:generate mockgen --build_flags=--mod=mod -source=./users.go -destination=./test/mock_users.go -package test MockRepository

// Repository operates on the list of all profiles, which is stored as a
// single blob. Update reads, modifies and writes back the whole list without
// locking, concurrent updates may overwrite each other.
type Repository interface {
	List(ctx context.Context) ([]Profile, error)
	ReplaceAll(ctx context.Context, profiles []Profile) error
	Get(ctx context.Context, username string) (*Profile, error)
	Update(ctx context.Context, username string, profile Profile) error
	// Exists reports whether a list has been stored, even an empty one.
	Exists(ctx context.Context) (bool, error)
}

func Usernames(profiles []Profile) []string {
	usernames := make([]string, 0, len(profiles))
	for _, p := range profiles {
		usernames = append(usernames, p.Username)
	}
	return usernames
}
