package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider is the read-only view of the configuration that the rest of the
// application depends on.
type Provider interface {
	GetAPIBaseURL() string
	GetAppAddr() string
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string
	GetDelayScale() float64
	GetMountTTL() time.Duration
	GetTracingEnabled() bool
	GetTracingServiceName() string
	GetZipkinURL() string
}

// Config holds all configuration for the application.
type Config struct {
	APIBaseURL         string        `validate:"required,url"`
	AppAddr            string        `validate:"required"`
	SessionSecret      string        `validate:"required,min=16"`
	LogFormat          string        `validate:"oneof=text json"`
	LogLevel           string        `validate:"oneof=debug info warn error"`
	DelayScale         float64       `validate:"gte=0,lte=10"`
	MountTTL           time.Duration `validate:"min=1m"`
	TracingEnabled     bool
	TracingServiceName string `validate:"required"`
	ZipkinURL          string `validate:"url"`
}

// Defaults used when a variable is unset.
const (
	DefaultAPIBaseURL  = "http://localhost:8000/"
	DefaultAppAddr     = ":8080"
	DefaultMountTTL    = 2 * time.Minute
	DefaultServiceName = "octofit-tracker"
	DefaultZipkinURL   = "http://localhost:9411/api/v2/spans"

	// devSessionSecret keeps local runs working without a .env file.
	devSessionSecret = "octofit-dev-session-secret"
)

// New loads configuration from the .env file, if any, and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds and validates a Config using getenv for lookups.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		APIBaseURL:         get("OCTOFIT_API_URL", DefaultAPIBaseURL),
		AppAddr:            get("APP_ADDR", DefaultAppAddr),
		SessionSecret:      get("SESSION_SECRET", devSessionSecret),
		LogFormat:          get("LOG_FORMAT", "text"),
		LogLevel:           get("LOG_LEVEL", "debug"),
		TracingServiceName: get("TRACING_SERVICE_NAME", DefaultServiceName),
		ZipkinURL:          get("ZIPKIN_URL", DefaultZipkinURL),
	}

	var err error
	if cfg.DelayScale, err = strconv.ParseFloat(get("OCTOFIT_DELAY_SCALE", "1"), 64); err != nil {
		return nil, fmt.Errorf("OCTOFIT_DELAY_SCALE: %w", err)
	}
	if cfg.MountTTL, err = time.ParseDuration(get("MOUNT_TTL", DefaultMountTTL.String())); err != nil {
		return nil, fmt.Errorf("MOUNT_TTL: %w", err)
	}
	if cfg.TracingEnabled, err = strconv.ParseBool(get("TRACING_ENABLED", "false")); err != nil {
		return nil, fmt.Errorf("TRACING_ENABLED: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) GetAPIBaseURL() string         { return c.APIBaseURL }
func (c *Config) GetAppAddr() string            { return c.AppAddr }
func (c *Config) GetSessionSecret() string      { return c.SessionSecret }
func (c *Config) GetLogFormat() string          { return c.LogFormat }
func (c *Config) GetLogLevel() string           { return c.LogLevel }
func (c *Config) GetDelayScale() float64        { return c.DelayScale }
func (c *Config) GetMountTTL() time.Duration    { return c.MountTTL }
func (c *Config) GetTracingEnabled() bool       { return c.TracingEnabled }
func (c *Config) GetTracingServiceName() string { return c.TracingServiceName }
func (c *Config) GetZipkinURL() string          { return c.ZipkinURL }
