package observations

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Start     string `envconfig:"TIDEPOOL_HISTORY_START" default:"2025-06-25"`
	End       string `envconfig:"TIDEPOOL_HISTORY_END" default:"2025-09-23"`
	Seed      int64  `envconfig:"TIDEPOOL_HISTORY_SEED"`
	CacheSize int    `envconfig:"TIDEPOOL_HISTORY_CACHE_SIZE" default:"128"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Window(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Window is an inclusive range of calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

func (c *Config) Window() (Window, error) {
	start, err := time.Parse(DateFormat, c.Start)
	if err != nil {
		return Window{}, fmt.Errorf("invalid history start date: %w", err)
	}
	end, err := time.Parse(DateFormat, c.End)
	if err != nil {
		return Window{}, fmt.Errorf("invalid history end date: %w", err)
	}
	if end.Before(start) {
		return Window{}, fmt.Errorf("history end date %s is before start date %s", c.End, c.Start)
	}

	return Window{Start: start, End: end}, nil
}

// Days returns the number of calendar days in the window.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}
