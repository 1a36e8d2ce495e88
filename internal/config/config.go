package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

type Config struct {
	Server      ServerConfig
	LLM         LLMConfig
	OpenAI      OpenAIConfig
	Gemini      GeminiConfig
	Store       StoreConfig
	RedisConfig RedisConfig
	Cache       CacheConfig
	LogLevel    zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"2m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
	PublicBaseURL   string        `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080/"`
}

type LLMConfig struct {
	Provider string `env:"LLM_PROVIDER" envDefault:"gemini"`
}

type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

type GeminiConfig struct {
	APIKey  string `env:"GEMINI_API_KEY"`
	BaseURL string `env:"GEMINI_BASE_URL"`
	Model   string `env:"GEMINI_MODEL" envDefault:"gemini-3-flash-preview"`
}

type StoreConfig struct {
	Backend    string `env:"STORE_BACKEND" envDefault:"sqlite"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"slangbot.db"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// CacheConfig controls the explanation response cache.
type CacheConfig struct {
	Enable bool          `env:"CACHE_ENABLE"`
	TTL    time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings. Credentials are checked later, when
// the gateway is built, so commands that never call the model still work.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}
	switch c.Store.Backend {
	case StoreMemory, StoreRedis, StoreSQLite:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}
	return nil
}
