package observations

import (
	"context"
	"fmt"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"

	historyKeyPrefix = "historicalData_"
)

// Observation is a single glucose, carbohydrate and insulin record. Date is
// a calendar date without a time component, Time is HH:MM.
type Observation struct {
	Date         string      `json:"date"`
	Time         string      `json:"time"`
	BloodGlucose Measurement `json:"bloodGlucose"`
	CarbIntake   Measurement `json:"carbIntake"`
	Insulin      Measurement `json:"insulin"`
}

//go:generate mockgen --build_flags=--mod=mod -source=./observations.go -destination=./test/mock_observations.go -package test

// Repository persists the history of each user as a single blob.
type Repository interface {
	// Get returns an empty history when none has been stored.
	Get(ctx context.Context, username string) ([]Observation, error)
	Exists(ctx context.Context, username string) (bool, error)
	Put(ctx context.Context, username string, history []Observation) error
}

// Generator backfills synthetic histories.
type Generator interface {
	Generate(ctx context.Context, username string) error
	GenerateAll(ctx context.Context, usernames []string)
}

func HistoryKey(username string) string {
	return fmt.Sprintf("%s%s", historyKeyPrefix, username)
}
