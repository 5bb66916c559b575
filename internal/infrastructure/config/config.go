package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const EnvProduction = "production"

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string `env:"CORS_ORIGIN"`

	Session SessionConfig
	LLM     LLMConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	Secret     string        `env:"SESSION_SECRET"`
	CookieName string        `env:"SESSION_COOKIE, default=legal.sid"`
	TTL        time.Duration `env:"SESSION_TTL,    default=168h"`
}

type LLMConfig struct {
	APIKey  string        `env:"LLM_API_KEY"`
	BaseURL string        `env:"LLM_BASE_URL"`
	Model   string        `env:"LLM_MODEL,   default=gemini-2.5-flash"`
	Timeout time.Duration `env:"LLM_TIMEOUT, default=60s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=legal_assistant"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// devSessionSecret signs cookies outside production when no secret is set.
const devSessionSecret = "dev-only-session-secret"

// IsProduction reports whether secure cookies and JSON logs are required.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Validate rejects settings that are unsafe for the selected environment.
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		if c.IsProduction() {
			return errors.New("config: SESSION_SECRET is required in production")
		}
		c.Session.Secret = devSessionSecret
	}
	if c.Session.TTL <= 0 {
		return errors.New("config: SESSION_TTL must be positive")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
