// Package config loads the demo server configuration with viper.
//
// Values come from, in increasing priority: built-in defaults, an optional
// YAML file and WEBKIT_-prefixed environment variables (dots become
// underscores, e.g. WEBKIT_REDIS_ADDR overrides redis.addr).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Sternrassler/go-webkit/pkg/logging"
	"github.com/Sternrassler/go-webkit/pkg/paginator"
	"github.com/Sternrassler/go-webkit/pkg/ratelimit"
	"github.com/Sternrassler/go-webkit/pkg/store"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "WEBKIT"

// ErrInvalidConfig is returned by Load when a value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all demo server configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	RateLimit  RateLimitConfig  `mapstructure:"ratelimit"`
}

// ServerConfig is the configuration for the HTTP server
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	Namespace string `mapstructure:"namespace"`
	List      string `mapstructure:"list"`
}

// LoggingConfig is the configuration for the logger
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// PaginationConfig is the configuration for paginated endpoints
type PaginationConfig struct {
	PerPage             int                `mapstructure:"per_page"`
	Orphans             int                `mapstructure:"orphans"`
	AllowEmptyFirstPage bool               `mapstructure:"allow_empty_first_page"`
	OnEachSide          int                `mapstructure:"on_each_side"`
	OnEnds              int                `mapstructure:"on_ends"`
	Messages            paginator.Messages `mapstructure:"messages"`
}

// RateLimitConfig is the configuration for the request limiter
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int           `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

// Load reads configuration from path (optional, may be empty) and the
// environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Missing message fields fall back to the built-in texts
	cfg.Pagination.Messages = paginator.DefaultMessages().Merge(cfg.Pagination.Messages)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	pg := paginator.DefaultConfig()

	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	// Redis
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.namespace", "demo")
	v.SetDefault("redis.list", "items")

	// Logging
	v.SetDefault("logging.level", string(logging.LevelInfo))
	v.SetDefault("logging.pretty", false)

	// Pagination
	v.SetDefault("pagination.per_page", pg.PerPage)
	v.SetDefault("pagination.orphans", pg.Orphans)
	v.SetDefault("pagination.allow_empty_first_page", pg.AllowEmptyFirstPage)
	v.SetDefault("pagination.on_each_side", paginator.DefaultOnEachSide)
	v.SetDefault("pagination.on_ends", paginator.DefaultOnEnds)
	v.SetDefault("pagination.messages.invalid_page", "")
	v.SetDefault("pagination.messages.min_page", "")
	v.SetDefault("pagination.messages.no_results", "")
	v.SetDefault("pagination.messages.ellipsis", "")

	// Rate limit
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.limit", ratelimit.DefaultLimit)
	v.SetDefault("ratelimit.window", ratelimit.DefaultWindow)
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port must be in [1, 65535] (got %d)", ErrInvalidConfig, cfg.Server.Port)
	}
	if cfg.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required", ErrInvalidConfig)
	}
	if cfg.Pagination.PerPage < 1 {
		return fmt.Errorf("%w: pagination.per_page must be >= 1 (got %d)", ErrInvalidConfig, cfg.Pagination.PerPage)
	}
	if cfg.Pagination.Orphans < 0 {
		return fmt.Errorf("%w: pagination.orphans must be >= 0 (got %d)", ErrInvalidConfig, cfg.Pagination.Orphans)
	}
	if cfg.Pagination.OnEachSide < 0 || cfg.Pagination.OnEnds < 0 {
		return fmt.Errorf("%w: pagination.on_each_side and pagination.on_ends must be >= 0", ErrInvalidConfig)
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.Limit < 1 {
			return fmt.Errorf("%w: ratelimit.limit must be >= 1 (got %d)", ErrInvalidConfig, cfg.RateLimit.Limit)
		}
		if cfg.RateLimit.Window < time.Second {
			return fmt.Errorf("%w: ratelimit.window must be >= 1s (got %s)", ErrInvalidConfig, cfg.RateLimit.Window)
		}
	}
	return nil
}

// Paginator returns the paginator configuration.
func (c PaginationConfig) Paginator() paginator.Config {
	return paginator.Config{
		PerPage:             c.PerPage,
		Orphans:             c.Orphans,
		AllowEmptyFirstPage: c.AllowEmptyFirstPage,
		Messages:            c.Messages,
	}
}

// Logger returns the logger configuration. Output defaults to stderr.
func (c LoggingConfig) Logger() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.LogLevel(c.Level)
	cfg.Pretty = c.Pretty
	return cfg
}

// Limiter returns the rate limiter configuration keyed by remote IP.
func (c RateLimitConfig) Limiter() ratelimit.Config {
	cfg := ratelimit.DefaultConfig()
	cfg.Limit = c.Limit
	cfg.Window = c.Window
	return cfg
}

// ListKey returns the key of the demo list.
func (c RedisConfig) ListKey() store.ListKey {
	return store.ListKey{Namespace: c.Namespace, Name: c.List}
}
