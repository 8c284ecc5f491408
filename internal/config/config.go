package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/transitkit/opendata-go/pkg/transport"
)

type Config struct {
	Environment string `validate:"required"`
	LogLevel    zerolog.Level
	HTTPTimeout time.Duration `validate:"gt=0"`
	BaseURL     string        `validate:"required,url"`
	UserAgent   string        `validate:"required"`
}

// fileConfig mirrors the YAML layout; durations and levels arrive as strings
type fileConfig struct {
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`
	HTTPTimeout string `yaml:"http_timeout"`
	BaseURL     string `yaml:"base_url"`
	UserAgent   string `yaml:"user_agent"`
}

type Option func(*Config)

// WithEnvironment allows setting the environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithLogLevel allows setting the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		parsedLevel, err := zerolog.ParseLevel(level)
		if err != nil {
			parsedLevel = zerolog.InfoLevel
		}
		c.LogLevel = parsedLevel
	}
}

// WithHTTPTimeout allows setting the HTTP timeout
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.HTTPTimeout = timeout
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Config) {
		c.UserAgent = userAgent
	}
}

// New creates a new configuration with default values
func New(opts ...Option) *Config {
	cfg := &Config{
		Environment: "production",
		LogLevel:    zerolog.InfoLevel,
		HTTPTimeout: 30 * time.Second,
		BaseURL:     transport.DefaultBaseURL,
		UserAgent:   "opendata-go/1.0",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// InitializeLogging sets up logging based on the configuration
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(c.LogLevel)

	// Setup console logger for development environments
	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).
			With().
			Timestamp().
			Logger()
	}
}

// Validate checks the values a client cannot run without
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ClientOptions converts the configuration into transport client options
func (c *Config) ClientOptions() []transport.Option {
	return []transport.Option{
		transport.WithBaseURL(c.BaseURL),
		transport.WithTimeout(c.HTTPTimeout),
		transport.WithUserAgent(c.UserAgent),
	}
}

// NewClient builds a transport client from the configuration
func (c *Config) NewClient() *transport.Client {
	return transport.New(c.ClientOptions()...)
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	return New(
		WithEnvironment(getEnvOrDefault("ENV", "production")),
		WithLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		WithHTTPTimeout(getDurationEnvOrDefault("HTTP_TIMEOUT", 30*time.Second)),
		WithBaseURL(getEnvOrDefault("TRANSPORT_BASE_URL", transport.DefaultBaseURL)),
		WithUserAgent(getEnvOrDefault("TRANSPORT_USER_AGENT", "opendata-go/1.0")),
	)
}

// LoadFromFile reads a YAML file on top of the defaults and validates the result.
// Keys missing from the file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	var opts []Option
	if fc.Environment != "" {
		opts = append(opts, WithEnvironment(fc.Environment))
	}
	if fc.LogLevel != "" {
		opts = append(opts, WithLogLevel(fc.LogLevel))
	}
	if fc.HTTPTimeout != "" {
		timeout, err := time.ParseDuration(fc.HTTPTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing http_timeout: %w", err)
		}
		opts = append(opts, WithHTTPTimeout(timeout))
	}
	if fc.BaseURL != "" {
		opts = append(opts, WithBaseURL(fc.BaseURL))
	}
	if fc.UserAgent != "" {
		opts = append(opts, WithUserAgent(fc.UserAgent))
	}

	cfg := New(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Str("environment", cfg.Environment).
		Str("base_url", cfg.BaseURL).
		Dur("http_timeout", cfg.HTTPTimeout).
		Msg("Configuration loaded from file")

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Warn().Str("key", key).Msg("Invalid duration value in environment variable, using default")
	}
	return defaultValue
}
