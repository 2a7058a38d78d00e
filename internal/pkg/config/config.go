package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIBaseURL is the REST backend every domain call goes to.
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:8080"`
	// HTTPTimeout bounds each outbound request. There are no retries, so this
	// is also the worst-case latency a page fetch can see.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=30s"`
	// ServiceProviderID is stamped onto customer self-registration, matching
	// the single-tenant deployment the backend expects.
	ServiceProviderID int `env:"SERVICE_PROVIDER_ID, default=1"`

	Session SessionConfig
}

// SessionConfig selects where the persisted session slot lives. When Redis
// is configured it wins; otherwise the slot is a JSON file under StateDir.
type SessionConfig struct {
	StateDir  string `env:"STATE_DIR,  default=."`
	RedisAddr string `env:"REDIS_ADDR"`
	RedisDB   int    `env:"REDIS_DB,   default=0"`
}

// UseRedis reports whether the session slot should be Redis-backed.
func (s SessionConfig) UseRedis() bool { return s.RedisAddr != "" }

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
