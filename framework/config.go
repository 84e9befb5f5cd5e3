package framework

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	DefaultBaseURL      = "https://reqres.in"
	DefaultAPIKeyHeader = "x-api-key"
)

// Config holds the settings for talking to the service under test. All fields can be set
// from environment variables; command-line flags take precedence over them.
type Config struct {
	BaseURL string `env:"REQRES_BASE_URL" envDefault:"https://reqres.in"`

	// APIKey is sent in the APIKeyHeader header of every request if it is non-empty.
	APIKey       string `env:"REQRES_API_KEY"`
	APIKeyHeader string `env:"REQRES_API_KEY_HEADER" envDefault:"x-api-key"`

	// RequestTimeout of zero leaves the HTTP client's default behaviour unchanged.
	RequestTimeout time.Duration `env:"REQRES_REQUEST_TIMEOUT" envDefault:"0s"`

	UserAgent string `env:"REQRES_USER_AGENT" envDefault:"reqres-contract-tests"`
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("invalid environment configuration: %w", err)
	}
	return c, nil
}

// LoadConfigFrom is like LoadConfig, but reads from the specified map instead of the
// process environment.
func LoadConfigFrom(environment map[string]string) (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("invalid environment configuration: %w", err)
	}
	return c, nil
}

// Validate checks that the configuration can be used to build a TestHarness.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL %q must use http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base URL %q has no host", c.BaseURL)
	}
	if c.APIKey != "" && strings.TrimSpace(c.APIKeyHeader) == "" {
		return errors.New("an API key header name is required when an API key is set")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	return nil
}
