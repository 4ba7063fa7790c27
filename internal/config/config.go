package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Global singleton so packages outside the wire graph can read configuration.
var globalConfig *Config

// Config holds all environment backed configuration for hub-api.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9091"`
	AppName     string `env:"APP_NAME" envDefault:"AI Tool Hub"`
	AppURL      string `env:"APP_URL" envDefault:"http://localhost:8080"`

	// Database
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	// Sessions
	RedisURL           string        `env:"REDIS_URL"`
	SessionTTL         time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionRememberTTL time.Duration `env:"SESSION_REMEMBER_TTL" envDefault:"720h"`

	// Provider credentials
	OpenAIAPIKey      string `env:"OPENAI_API_KEY"`
	OpenRouterAPIKey  string `env:"OPENROUTER_API_KEY"`
	DeepSeekAPIKey    string `env:"DEEPSEEK_API_KEY"`
	HuggingFaceAPIKey string `env:"HUGGINGFACE_API_KEY"`

	OpenRouterBaseURL  string `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	DeepSeekBaseURL    string `env:"DEEPSEEK_BASE_URL" envDefault:"https://api.deepseek.com/v1"`
	HuggingFaceBaseURL string `env:"HUGGINGFACE_BASE_URL" envDefault:"https://api-inference.huggingface.co/models"`

	// Generation
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"30s"`

	// Capability catalogs
	ToolCapabilitiesPath  string `env:"TOOL_CAPABILITIES_PATH" envDefault:"config/tool_capabilities.json"`
	ModelCapabilitiesPath string `env:"MODEL_CAPABILITIES_PATH" envDefault:"config/model_capabilities.json"`

	// Google Sign-In
	GoogleClientID string        `env:"GOOGLE_CLIENT_ID"`
	GoogleJWKSURL  string        `env:"GOOGLE_JWKS_URL" envDefault:"https://www.googleapis.com/oauth2/v3/certs"`
	JWKSRefresh    time.Duration `env:"JWKS_REFRESH_INTERVAL" envDefault:"1h"`

	// Background jobs
	SessionSweepIntervalMinutes int  `env:"SESSION_SWEEP_INTERVAL_MINUTES" envDefault:"15"`
	RewardCleanupEnabled        bool `env:"REWARD_CLEANUP_ENABLED" envDefault:"true"`

	// Observability / Logging
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"hub-api"`
	ServiceNamespace string `env:"SERVICE_NAMESPACE" envDefault:"aitoolhub"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load parses environment variables into Config and performs minimal validation.
// A local .env file is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.AppURL = strings.TrimRight(cfg.AppURL, "/")
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = 30 * time.Second
	}

	globalConfig = cfg
	return cfg, nil
}

// GetGlobal returns the last loaded configuration, or nil when Load has not run.
func GetGlobal() *Config {
	return globalConfig
}

// Version is stamped at build time via -ldflags.
var Version = "dev"
