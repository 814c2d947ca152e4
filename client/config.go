package client

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ontotext/s4-go/logger"
)

const (
	// DefaultBaseURL is the standard base address for the S4 API.
	DefaultBaseURL = "https://text.s4.ontotext.com/"

	defaultTimeout      = 30 * time.Second
	defaultMaxRedirects = 10
)

// Config configures the S4 client.
type Config struct {
	// BaseURL is the base address against which relative request
	// targets resolve. Defaults to DefaultBaseURL.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// KeyID is the S4 API key identifier.
	KeyID string `yaml:"key_id" mapstructure:"key_id"`

	// KeySecret is the S4 API key secret.
	KeySecret string `yaml:"key_secret" mapstructure:"key_secret"`

	// Timeout bounds each typed request. Defaults to 30s. Streaming
	// requests are bounded by the caller's context instead.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// MaxRedirects caps the manual redirect chain. Defaults to 10.
	MaxRedirects int `yaml:"max_redirects" mapstructure:"max_redirects"`

	// Headers are default headers applied to all requests. Per-request
	// headers are merged on top; the Authorization header can never be
	// overridden.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// TLS configures transport TLS for private S4 deployments.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Transport overrides the HTTP transport. When set, TLS is ignored.
	Transport http.RoundTripper `yaml:"-" mapstructure:"-"`

	// ErrorDecoders override the decoders used for structured error
	// bodies. Defaults to JSON and XML decoders.
	ErrorDecoders []ErrorDecoder `yaml:"-" mapstructure:"-"`

	// Logger receives dispatch and redirect diagnostics. Defaults to a
	// nop logger: the SDK is silent unless asked not to be.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxRedirects <= 0 {
		c.MaxRedirects = defaultMaxRedirects
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.KeyID == "" {
		return NewConfigurationError("key_id is required", nil)
	}
	if c.KeySecret == "" {
		return NewConfigurationError("key_secret is required", nil)
	}
	if c.Timeout <= 0 {
		return NewConfigurationError(fmt.Sprintf("timeout must be positive (got %v)", c.Timeout), nil)
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return NewConfigurationError("invalid TLS configuration", err)
		}
	}
	return nil
}
