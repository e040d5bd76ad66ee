package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// MaxCounterFPS caps the frame rate used to sample counter keyframes.
	MaxCounterFPS = 240
)

var (
	ErrInvalidFPS       = errors.New("counter fps must be between 1 and 240")
	ErrInvalidDuration  = errors.New("counter duration must be positive")
	ErrInvalidThreshold = errors.New("scroll threshold must not be negative")
	ErrInvalidRateLimit = errors.New("api rate limit must be at least 1 request per minute")
)

type Config struct {
	ServerPort     string   `env:"SERVER_PORT" envDefault:"8080"`
	Environment    string   `env:"ENVIRONMENT" envDefault:"development"`
	AppURL         string   `env:"APP_URL" envDefault:"http://localhost:8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	StaticDir      string   `env:"STATIC_DIR" envDefault:"static"`
	// ContentPath points at a site copy YAML file; empty uses the embedded copy
	ContentPath string `env:"CONTENT_PATH"`

	// Motion
	CounterDuration time.Duration `env:"COUNTER_DURATION" envDefault:"2s"`
	CounterFPS      int           `env:"COUNTER_FPS" envDefault:"60"`
	ScrollThreshold float64       `env:"SCROLL_THRESHOLD" envDefault:"20"`
	CounterMargin   float64       `env:"COUNTER_MARGIN" envDefault:"-100"`
	SectionMargin   float64       `env:"SECTION_MARGIN" envDefault:"-50"`

	// Requests per minute per IP on /api
	APIRateLimit int `env:"API_RATE_LIMIT" envDefault:"60"`
}

// Load reads .env (if present) and the process environment
func Load() (*Config, error) {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Config loaded (environment=%s, port=%s, counter=%s@%dfps)",
		cfg.Environment, cfg.ServerPort, cfg.CounterDuration, cfg.CounterFPS)
	return cfg, nil
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	cfg := &Config{}
	// Parsing an empty environment only applies envDefault tags
	if err := env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}}); err != nil {
		log.Printf("[WARNING] Failed to apply config defaults: %v", err)
	}
	return cfg
}

// Validate checks the motion settings and the API rate limit
func (c *Config) Validate() error {
	if c.CounterFPS < 1 || c.CounterFPS > MaxCounterFPS {
		return fmt.Errorf("%w (got %d)", ErrInvalidFPS, c.CounterFPS)
	}
	if c.CounterDuration <= 0 {
		return fmt.Errorf("%w (got %s)", ErrInvalidDuration, c.CounterDuration)
	}
	if c.ScrollThreshold < 0 {
		return fmt.Errorf("%w (got %v)", ErrInvalidThreshold, c.ScrollThreshold)
	}
	if c.APIRateLimit < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidRateLimit, c.APIRateLimit)
	}
	return nil
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
