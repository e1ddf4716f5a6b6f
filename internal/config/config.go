package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"

	"github.com/josh-kwaku/bank-service/internal/repository"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv      string `env:"APP_ENV" envDefault:"production"`

	DBMaxOpenConns     int `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns     int `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetimeS int `env:"DB_CONN_MAX_LIFETIME_S" envDefault:"300"`
	DBConnMaxIdleTimeS int `env:"DB_CONN_MAX_IDLE_TIME_S" envDefault:"60"`

	// Events are published only when RedisAddr is set.
	RedisAddr         string `env:"REDIS_ADDR"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	EventStreamMaxLen int64  `env:"EVENT_STREAM_MAX_LEN" envDefault:"10000"`

	SeedOnStart               bool `env:"SEED_ON_START" envDefault:"false"`
	PreserveCreatedAtOnUpdate bool `env:"ACCOUNT_UPDATE_PRESERVE_CREATED_AT" envDefault:"false"`
	GraphQLMaxDepth           int  `env:"GRAPHQL_MAX_DEPTH" envDefault:"10"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Pool() repository.PoolConfig {
	return repository.PoolConfig{
		MaxOpenConns:     c.DBMaxOpenConns,
		MaxIdleConns:     c.DBMaxIdleConns,
		ConnMaxLifetimeS: c.DBConnMaxLifetimeS,
		ConnMaxIdleTimeS: c.DBConnMaxIdleTimeS,
	}
}

func (c *Config) EventsEnabled() bool {
	return c.RedisAddr != ""
}
