package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Pledger"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"pledger"`
	}

	Server struct {
		Timeout         time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
		CORSOrigins     []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET"`
		Issuer    string `envconfig:"JWT_ISSUER"`
	}

	Pledge struct {
		MinimumAmount string `envconfig:"PLEDGE_MINIMUM_AMOUNT" default:"1200"`
	}

	Analytics struct {
		DefaultRangeDays int `envconfig:"ANALYTICS_DEFAULT_RANGE_DAYS" default:"30"`
		TrendWindowDays  int `envconfig:"ANALYTICS_TREND_WINDOW_DAYS" default:"30"`
		LeaderboardSize  int `envconfig:"ANALYTICS_LEADERBOARD_SIZE" default:"10"`
	}

	// Redis is optional; an empty Addr disables the analytics cache.
	Redis struct {
		Addr     string        `envconfig:"REDIS_ADDR"`
		Password string        `envconfig:"REDIS_PASSWORD"`
		DB       int           `envconfig:"REDIS_DB" default:"0"`
		CacheTTL time.Duration `envconfig:"ANALYTICS_CACHE_TTL" default:"60s"`
	}

	minimumPledge decimal.Decimal
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// MinimumPledge is the smallest amount accepted for any single pledge row.
func (c *Config) MinimumPledge() decimal.Decimal {
	return c.minimumPledge
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	minimum, err := decimal.NewFromString(cfg.Pledge.MinimumAmount)
	if err != nil {
		return nil, fmt.Errorf("parsing PLEDGE_MINIMUM_AMOUNT: %w", err)
	}

	if minimum.IsNegative() {
		return nil, fmt.Errorf("PLEDGE_MINIMUM_AMOUNT must not be negative, got %s", minimum)
	}

	cfg.minimumPledge = minimum

	if cfg.Analytics.DefaultRangeDays < 1 || cfg.Analytics.TrendWindowDays < 1 || cfg.Analytics.LeaderboardSize < 1 {
		return nil, fmt.Errorf("analytics ranges and leaderboard size must be positive")
	}

	return &cfg, nil
}
