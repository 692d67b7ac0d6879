package config

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/rulekit/pkg/capacity"
)

// Capacity sources understood by AppConfig.
const (
	SourceMemory   = "memory"
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
)

// AppConfig is the configuration of the rulekit command.
type AppConfig struct {
	LogLevel  string `env:"RULEKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"RULEKIT_LOG_FORMAT" envDefault:"text"`
	Env       string `env:"RULEKIT_ENV" envDefault:"development"`
	Language  string `env:"RULEKIT_LANG" envDefault:"en"`
	Workers   int    `env:"RULEKIT_WORKERS" envDefault:"4"`

	Capacity CapacityConfig `envPrefix:"RULEKIT_CAPACITY_"`

	Redis    capacity.RedisConfig
	Postgres capacity.PostgresConfig
}

// CapacityConfig selects where the user count consulted during registration comes from.
type CapacityConfig struct {
	Source   string `env:"SOURCE" envDefault:"memory"`
	Total    int64  `env:"TOTAL" envDefault:"0"`
	MaxUsers int64  `env:"MAX_USERS" envDefault:"1000"`
	RedisKey string `env:"REDIS_KEY" envDefault:"rulekit:users:total"`
	Query    string `env:"PG_QUERY" envDefault:"SELECT count(*) FROM users"`
}

// Validate checks values that env tags cannot express.
func (c AppConfig) Validate() error {
	if !slices.Contains([]string{SourceMemory, SourceRedis, SourcePostgres}, c.Capacity.Source) {
		return fmt.Errorf("%w: %q", ErrUnknownCapacitySource, c.Capacity.Source)
	}
	return nil
}
