package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ontotext/s4-go/client"
	"github.com/ontotext/s4-go/logger"
)

// Config is the top-level SDK configuration.
type Config struct {
	// BaseURL overrides the standard S4 endpoint.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// KeyID and KeySecret are the S4 API credentials.
	KeyID     string `yaml:"key_id" mapstructure:"key_id" validate:"required"`
	KeySecret string `yaml:"key_secret" mapstructure:"key_secret" validate:"required"`

	// Timeout bounds each typed request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// MaxRedirects caps the manual redirect chain.
	MaxRedirects int `yaml:"max_redirects" mapstructure:"max_redirects"`

	// Log configures SDK diagnostics.
	Log logger.Config `yaml:"log" mapstructure:"log"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration is complete.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ClientConfig bridges the loaded settings into a client configuration.
// The logger is constructed from the Log section.
func (c *Config) ClientConfig() client.Config {
	return client.Config{
		BaseURL:      c.BaseURL,
		KeyID:        c.KeyID,
		KeySecret:    c.KeySecret,
		Timeout:      c.Timeout,
		MaxRedirects: c.MaxRedirects,
		Logger:       logger.New(&c.Log, "s4"),
	}
}
