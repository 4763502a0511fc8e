package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"`
}

type Database struct {
	Driver string `mapstructure:"driver"` // postgres or sqlite
	DSN    string `mapstructure:"dsn"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Auth struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type Feed struct {
	// PageSize is shared by every paginated view.
	PageSize int `mapstructure:"page_size"`
	// CacheTTL bounds the staleness of the cached global timeline.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type Sentry struct {
	DSN string `mapstructure:"dsn"`
}

type RateLimit struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type Config struct {
	Server    Server    `mapstructure:"server"`
	Database  Database  `mapstructure:"database"`
	Redis     Redis     `mapstructure:"redis"`
	Auth      Auth      `mapstructure:"auth"`
	Feed      Feed      `mapstructure:"feed"`
	Sentry    Sentry    `mapstructure:"sentry"`
	RateLimit RateLimit `mapstructure:"rate_limit"`
}

// Load reads config.yaml from the working directory (or path, when
// given) and applies INKWELL_* environment overrides on top of the
// defaults. A missing file is fine; defaults plus env are enough to
// boot a dev instance.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "inkwell.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("feed.page_size", 10)
	v.SetDefault("feed.cache_ttl", "20s")
	v.SetDefault("rate_limit.rps", 50)
	v.SetDefault("rate_limit.burst", 100)

	v.SetEnvPrefix("INKWELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
