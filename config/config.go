package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpPort     uint16 `envconfig:"TIDEPOOL_GLUCOGUIDE_HTTP_PORT" default:"8080" required:"true"`
	UsersCSVPath string `envconfig:"TIDEPOOL_GLUCOGUIDE_USERS_CSV"`
}

func New() *Config {
	return &Config{}
}

func NewConfig() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) LoadFromEnv() error {
	if err := LoadDotEnv(); err != nil {
		return err
	}
	return envconfig.Process("", c)
}

// LoadDotEnv populates the environment from a .env file in the working
// directory. Variables already set in the environment take precedence.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
